package app

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/tanss/internal/config"
	"github.com/ayoisaiah/tanss/internal/lookup"
	"github.com/ayoisaiah/tanss/report"
)

// lookupPutAction stores the display name of an id.
func lookupPutAction(ctx *cli.Context) error {
	kind, err := lookup.ParseKind(ctx.String(kindFlag.Name))
	if err != nil {
		return err
	}

	_, db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	id, name := ctx.Int(idFlag.Name), ctx.String(nameFlag.Name)

	if err := db.PutLookup(kind, id, name); err != nil {
		return err
	}

	report.LookupSaved(string(kind), id, name)

	return nil
}

// lookupGetAction prints the display name of an id, or "#<id>" when the id
// is not known.
func lookupGetAction(ctx *cli.Context) error {
	kind, err := lookup.ParseKind(ctx.String(kindFlag.Name))
	if err != nil {
		return err
	}

	_, db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	cache := loadLookups(ctx, db)

	fmt.Fprintln(config.Stdout, cache.Name(kind, ctx.Int(idFlag.Name)))

	return nil
}

// lookupListAction prints the stored lookup tables.
func lookupListAction(ctx *cli.Context) error {
	_, db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	cache := loadLookups(ctx, db)

	kinds := cache.Kinds()

	if k := ctx.String(kindOptionalFlag.Name); k != "" {
		kind, err := lookup.ParseKind(k)
		if err != nil {
			return err
		}

		kinds = []lookup.Kind{kind}
	}

	if ctx.Bool(jsonFlag.Name) {
		out := make(map[lookup.Kind][]lookup.Entry, len(kinds))
		for _, k := range kinds {
			out[k] = cache.Entries(k)
		}

		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(config.Stdout, string(b))

		return nil
	}

	if len(cache.Kinds()) == 0 {
		pterm.Info.Println(noLookupsMsg)
		return nil
	}

	printLookupTable(config.Stdout, cache, kinds)
	pterm.Info.Println(lookupSummary(cache))

	return nil
}
