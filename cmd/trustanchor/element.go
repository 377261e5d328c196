package main

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/glinharesb/trustanchor-go/internal/emulator"
	"github.com/glinharesb/trustanchor-go/internal/optiga"
)

func elementCommand() *cli.Command {
	oidFlag := func() cli.Flag {
		return &cli.StringFlag{Name: "oid", Usage: "data object, such as 0xE0E1", Required: true}
	}
	return &cli.Command{
		Name:  "element",
		Usage: "Inspect and manage the data objects of an emulated element image",
		Commands: []*cli.Command{
			{
				Name:  "objects",
				Usage: "List the data objects in the image",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "kind", Usage: "only objects of this kind: data or key"},
				},
				Action: runObjects,
			},
			{
				Name:   "terminate",
				Usage:  "Move a data object to the TERMINATION life cycle state",
				Flags:  []cli.Flag{oidFlag()},
				Action: runTerminate,
			},
			{
				Name:  "remove",
				Usage: "Delete a data object from the image",
				Flags: []cli.Flag{
					oidFlag(),
					&cli.BoolFlag{Name: "force", Usage: "remove a key even if a certificate is chained to it"},
				},
				Action: runRemove,
			},
		},
	}
}

// openImage opens the existing image named by --emulator-image.
func openImage(cmd *cli.Command) (*emulator.PersistentStore, error) {
	path := cmd.String("emulator-image")
	if path == "" {
		return nil, errors.New("element commands need --emulator-image")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("element image: %w", err)
	}
	return emulator.NewPersistentStore(path)
}

func runObjects(_ context.Context, cmd *cli.Command) error {
	var kind emulator.ObjectKind
	switch cmd.String("kind") {
	case "":
	case "data":
		kind = emulator.KindData
	case "key":
		kind = emulator.KindKey
	default:
		return fmt.Errorf("unknown --kind %q", cmd.String("kind"))
	}

	store, err := openImage(cmd)
	if err != nil {
		return err
	}
	entries, err := store.List(kind)
	if err != nil {
		return err
	}
	slices.SortFunc(entries, func(a, b *emulator.Entry) int { return cmp.Compare(a.OID, b.OID) })

	enc := json.NewEncoder(output(cmd))
	for _, e := range entries {
		line := struct {
			OID       string            `json:"oid"`
			Kind      string            `json:"kind"`
			State     string            `json:"state"`
			Size      int               `json:"size,omitempty"`
			MaxSize   int               `json:"max_size"`
			CreatedAt string            `json:"created_at"`
			Labels    map[string]string `json:"labels,omitempty"`
		}{e.OID.String(), e.Kind.String(), e.State.String(), len(e.Data), e.MaxSize, e.CreatedAt.Format(time.RFC3339), e.Labels}
		if err := enc.Encode(line); err != nil {
			return err
		}
	}
	return nil
}

func runTerminate(_ context.Context, cmd *cli.Command) error {
	oid, err := optiga.ParseOID(cmd.String("oid"))
	if err != nil {
		return err
	}
	store, err := openImage(cmd)
	if err != nil {
		return err
	}
	if err := store.UpdateState(oid, emulator.StateTermination); err != nil {
		return fmt.Errorf("terminate %s: %w", oid, err)
	}
	_, err = fmt.Fprintf(output(cmd), "%s %s\n", oid, emulator.StateTermination)
	return err
}

func runRemove(_ context.Context, cmd *cli.Command) error {
	oid, err := optiga.ParseOID(cmd.String("oid"))
	if err != nil {
		return err
	}
	store, err := openImage(cmd)
	if err != nil {
		return err
	}

	if !cmd.Bool("force") {
		certs, err := store.List(emulator.KindData)
		if err != nil {
			return err
		}
		for _, c := range certs {
			if c.Labels["key"] == oid.String() {
				return fmt.Errorf("certificate %s is chained to %s; use --force to remove it anyway", c.OID, oid)
			}
		}
	}

	if err := store.Delete(oid); err != nil {
		return fmt.Errorf("remove %s: %w", oid, err)
	}
	_, err = fmt.Fprintf(output(cmd), "%s removed\n", oid)
	return err
}
