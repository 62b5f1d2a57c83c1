// Package catalog implements the catalog maintenance commands: dumping
// the built-in knowledge base and validating user-supplied catalogs.
package catalog

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/bouwdoc/viewtype/internal/common"
	"github.com/bouwdoc/viewtype/pkg/catalog"
	"github.com/bouwdoc/viewtype/pkg/storage"
)

// DumpAction writes the built-in catalog as YAML, a starting point for
// rule authors extending the knowledge base.
func DumpAction(c *cli.Context) error {
	data, err := catalog.Default().Dump()
	if err != nil {
		return err
	}

	s := &storage.Storage{}
	if err := s.WriteOutput(c.String("output"), data); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return nil
}

// CheckAction compiles a user catalog file and reports its shape.
func CheckAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("no catalog file provided")
	}

	cat, err := catalog.LoadFile(path)
	if err != nil {
		logger.Error("catalog check failed", "path", path, "error", err)
		os.Exit(1)
	}

	rules := 0
	for _, category := range cat.Categories {
		rules += len(category.Rules)
	}
	logger.Info("catalog ok", "path", path, "categories", len(cat.Categories), "rules", rules)
	fmt.Printf("OK: %d categories, %d rules (%v)\n", len(cat.Categories), rules, cat.Names())
	return nil
}
