package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/depsize/pkg/annotate"
	"github.com/matzehuels/depsize/pkg/errors"
	"github.com/matzehuels/depsize/pkg/manifest"
	"github.com/matzehuels/depsize/pkg/sizer"
)

// annotateCommand creates the one-shot annotate command.
func (c *CLI) annotateCommand() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "annotate [manifest]",
		Short: "Print a manifest with dependency sizes at line ends",
		Long: `Annotate reads a package.json file once, resolves the size of every
dependency and devDependency, and prints the buffer with dim size labels
appended to the declaring lines.

Sizes come from the npm registry (dist.unpackedSize), or from measuring
the installed directory under node_modules for "file:" references.
Declarations that cannot be sized are labeled "` + sizer.Unknown + `".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := manifest.Filename
			if len(args) == 1 {
				path = args[0]
			}

			s, err := resolveSettings(cmd, &flags)
			if err != nil {
				return err
			}
			if !s.enabled {
				printInfo("Annotation is disabled by config")
				return nil
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrap(errors.ErrCodeFileNotFound, err, "read manifest %s", path)
			}
			text := string(data)
			if _, err := manifest.Parse(text); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse %s", path)
			}

			abs, err := filepath.Abs(path)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %s", path)
			}

			ctx := withLogger(cmd.Context(), c.Logger)
			resolver := c.newResolver(s)

			prog := newProgress(loggerFromContext(ctx))
			groups := annotate.Pass(ctx, resolver, filepath.Dir(abs), text)
			prog.done(fmt.Sprintf("Resolved %d size groups", len(groups)))

			fmt.Println(strings.TrimRight(annotateBuffer(text, groups), "\n"))
			if n := len(groups[sizer.Unknown]); n > 0 {
				printWarning("%d declarations could not be sized", n)
			}
			return nil
		},
	}

	addRunFlags(cmd, &flags)
	return cmd
}
