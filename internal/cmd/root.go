package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/slimblog/newpost/internal/config"
	"github.com/slimblog/newpost/internal/entry"
	oerrors "github.com/slimblog/newpost/internal/errors"
	"github.com/slimblog/newpost/internal/output"
	"github.com/slimblog/newpost/internal/templates"
	"github.com/slimblog/newpost/internal/version"
)

// Deps are the side-effecting collaborators of the root command.
type Deps struct {
	// Fs receives the generated file.
	Fs afero.Fs

	// Now reads the clock used to complete partial datetimes.
	Now func() time.Time
}

// DefaultDeps writes to the OS filesystem and reads the wall clock.
func DefaultDeps() Deps {
	return Deps{Fs: afero.NewOsFs(), Now: time.Now}
}

// NewRootCmd creates the root command for the newpost CLI.
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithDeps(DefaultDeps())
}

// NewRootCmdWithDeps creates the root command with the given collaborators.
func NewRootCmdWithDeps(deps Deps) *cobra.Command {
	var (
		entryFlags  EntryFlags
		globalFlags GlobalFlags
	)

	cmd := &cobra.Command{
		Use:   "newpost [options] <title>",
		Short: "Create a new post file from a template",
		Long: `Create a new content file pre-populated with metadata and a template body.

Templates:
` + templateHelp() + `
Examples:
  # Create a post in ./src/posts
  newpost My First Post

  # Create a gem review with tags and a fixed date
  newpost -T gem -t ruby,cli -d 2023-05-01 Thor

  # Create a bookmark
  newpost -c bm -w https://go.dev The Go Programming Language`,
		Args:          cobra.ArbitraryArgs,
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			return runCreate(c, args, &entryFlags, &globalFlags, deps)
		},
	}

	cmd.SetVersionTemplate("newpost {{.Version}}\n")
	entryFlags.AddTo(cmd)
	globalFlags.AddTo(cmd)

	return cmd
}

func runCreate(c *cobra.Command, args []string, ef *EntryFlags, gf *GlobalFlags, deps Deps) error {
	output.SetupLogging(output.LogConfig{Verbosity: gf.Verbose})

	pathResult, err := config.ResolveConfigPath(gf.Config)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}
	pathResult.LogResolved()

	if gf.InitConfig {
		if err := config.WriteDefault(pathResult.ConfigPath); err != nil {
			return err
		}
		output.Println(output.FormatCheckmark("Configuration initialized at " + output.StyleNoun.Render(pathResult.ConfigPath)))
		return nil
	}

	cfg, err := config.NewLoader().LoadWithDefaults(pathResult.ConfigPath)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}
	output.SetupLogging(output.LogConfig{Verbosity: gf.Verbose, Timestamps: cfg.Log.Timestamps})

	dirs := entry.Dirs{
		Posts:     cfg.Paths.Posts,
		Bookmarks: cfg.Paths.Bookmarks,
		Slides:    cfg.Paths.Slides,
	}

	if gf.ListTemplates {
		output.Println(renderTemplateList(dirs))
		return nil
	}

	output.Debug("original input",
		"args", strings.Join(args, " "),
		"tags", ef.Tags,
		"category", ef.Category,
		"slug", ef.Slug,
		"datetime", ef.Datetime,
		"template", ef.Template,
		"website", ef.Website,
		"path", ef.Path,
		"verbose", gf.Verbose,
		"draft", ef.Draft,
	)

	e, err := entry.Resolve(ef.Options(args, dirs), deps.Now())
	if err != nil {
		if errors.Is(err, oerrors.ErrUsage) {
			fmt.Fprintln(c.ErrOrStderr(), err)
			fmt.Fprint(c.ErrOrStderr(), c.UsageString())
			return &oerrors.ExitError{Err: err, Code: oerrors.ExitUsageError, Printed: true}
		}
		return err
	}
	output.DebugYAML("post data", e)

	content, err := templates.Render(e)
	if err != nil {
		return err
	}
	if gf.Verbose >= output.VerbosityTrace {
		output.DebugBlock("template", content)
	}

	if gf.DryRun {
		output.Print(content)
		return nil
	}

	path, err := templates.NewWriter(deps.Fs, cfg.Extension).Write(e, content)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	}

	output.Println(output.FormatCreated(path, e.Draft))
	return nil
}

// templateHelp lists the registered templates for the long help text.
func templateHelp() string {
	var b strings.Builder
	for _, t := range templates.List() {
		line := fmt.Sprintf("  %-9s %s", t.Kind, t.Description)
		if aliases := entry.KindAliases(t.Kind); len(aliases) > 0 {
			line += " (alias: " + strings.Join(aliases, ", ") + ")"
		}
		if t.Default {
			line += " (default)"
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func renderTemplateList(dirs entry.Dirs) string {
	list := templates.List()
	rows := make([]output.TemplateRow, 0, len(list))
	for _, t := range list {
		rows = append(rows, output.TemplateRow{
			Name:        string(t.Kind),
			Aliases:     strings.Join(entry.KindAliases(t.Kind), ", "),
			Dir:         dirs.For(t.Kind),
			Description: t.Description,
			Default:     t.Default,
		})
	}
	return output.RenderTemplateTable(rows)
}
