// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slimblog/newpost/internal/entry"
)

// EntryFlags holds the flags that describe the entry to create.
type EntryFlags struct {
	Tags     string
	Category string
	Slug     string
	Draft    bool
	Template string
	Datetime string
	Website  string
	Path     string
}

// AddTo registers the entry flags on the given cobra command.
func (f *EntryFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Tags, "tags", "t", "",
		"The post tags, comma separated (tag1,tag2,tag3)")
	cmd.Flags().StringVarP(&f.Category, "category", "c", "",
		fmt.Sprintf("(%s) The post category. The default is %s.", categoryNames(), entry.DefaultCategory))
	cmd.Flags().StringVarP(&f.Slug, "slug", "s", "",
		"The post url slug (default: derived from the title)")
	cmd.Flags().BoolVarP(&f.Draft, "draft", "D", false,
		"The post is a draft")
	cmd.Flags().StringVarP(&f.Template, "template", "T", "",
		fmt.Sprintf("(%s) The post template. The default is %s.", kindNames(), entry.DefaultKind))
	cmd.Flags().StringVarP(&f.Datetime, "datetime", "d", "",
		"The post creation datetime, YYYY-MM-DD_hh:mm:ss. A date [YYYY-MM-DD] or time [hh:mm:ss] alone is completed with the current datetime")
	cmd.Flags().StringVarP(&f.Website, "website", "w", "",
		"The website link of the post title. Required if the category is bookmark")
	cmd.Flags().StringVarP(&f.Path, "path", "p", "",
		"Where to create the post file (default: chosen by the template)")
}

// Options converts the flag values into resolver input.
func (f *EntryFlags) Options(args []string, dirs entry.Dirs) entry.Options {
	return entry.Options{
		Args:     args,
		Tags:     f.Tags,
		Category: f.Category,
		Slug:     f.Slug,
		Draft:    f.Draft,
		Template: f.Template,
		Datetime: f.Datetime,
		Website:  f.Website,
		Path:     f.Path,
		Defaults: dirs,
	}
}

// GlobalFlags holds flags that control the tool rather than the entry.
type GlobalFlags struct {
	Config        string
	Verbose       int
	DryRun        bool
	ListTemplates bool
	InitConfig    bool
}

// AddTo registers the global flags on the given cobra command.
func (f *GlobalFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Config, "config", "",
		"Path to config file (env: NEWPOST_CONFIG)")
	cmd.Flags().CountVarP(&f.Verbose, "verbose", "v",
		"Show verbose information (repeat for more)")
	cmd.Flags().BoolVar(&f.DryRun, "dry-run", false,
		"Print the rendered file instead of writing it")
	cmd.Flags().BoolVar(&f.ListTemplates, "list-templates", false,
		"List the available templates and exit")
	cmd.Flags().BoolVar(&f.InitConfig, "init-config", false,
		"Write a default config file and exit")
}

func categoryNames() string {
	names := make([]string, 0, len(entry.Categories()))
	for _, c := range entry.Categories() {
		names = append(names, string(c))
	}
	return strings.Join(names, "/")
}

func kindNames() string {
	names := make([]string, 0, len(entry.Kinds()))
	for _, k := range entry.Kinds() {
		names = append(names, string(k))
	}
	return strings.Join(names, "/")
}
