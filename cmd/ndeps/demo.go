package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/muir/ndeps"
	"github.com/muir/ndeps/nview"
	"github.com/spf13/cobra"
)

type store struct {
	Greeting string
	Visitors []string
}

var demoActions = ndeps.Actions{
	"greet": func(s *store, name string) string {
		return s.Greeting + ", " + name
	},
	"visitors": ndeps.Actions{
		"count": func(s *store) int { return len(s.Visitors) },
		"list": func(s *store, sep string) string {
			return strings.Join(s.Visitors, sep)
		},
	},
}

type demoOptions struct {
	name       string
	greeting   string
	visitors   []string
	nested     bool
	noProvider bool
	dump       bool
	verbose    bool
}

func demoCmd() *cobra.Command {
	var opts demoOptions
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render the demonstration tree as HTML",
		Long: `Render the demonstration tree as HTML.

The tree is a page wrapped with InjectDeps and a greeting and a
visitor list wrapped with UseDeps.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.name, "name", "n", "world", "Name to greet")
	cmd.Flags().StringVarP(&opts.greeting, "greeting", "g", "Hello", "Greeting stored in the injected context")
	cmd.Flags().StringSliceVar(&opts.visitors, "visitors", []string{"ann", "bob"}, "Visitors stored in the injected context")
	cmd.Flags().BoolVar(&opts.nested, "nested", false, "Add an inner InjectDeps with a different greeting")
	cmd.Flags().BoolVar(&opts.noProvider, "no-provider", false, "Render the consumers without InjectDeps")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "Dump the bound actions before rendering")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log to stderr")
	return cmd
}

func runDemo(cmd *cobra.Command, opts demoOptions) error {
	if opts.verbose {
		ndeps.SetLogger(ndeps.LoggerFromStd(log.New(cmd.ErrOrStderr(), "ndeps: ", 0)))
		defer ndeps.SetLogger(nil)
	}
	s := &store{
		Greeting: opts.greeting,
		Visitors: opts.visitors,
	}
	if opts.dump {
		bound, err := ndeps.BindActions(nil, demoActions, s)
		if err != nil {
			return fmt.Errorf("bind: %s", ndeps.DetailedError(err))
		}
		spew.Fdump(cmd.OutOrStdout(), bound.Paths())
	}
	tree, err := demoTree(s, opts)
	if err != nil {
		return err
	}
	html, err := nview.RenderHTML(tree)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), html)
	return nil
}

func demoTree(s *store, opts demoOptions) (*nview.Node, error) {
	page := nview.Func("Page", func(_ *nview.Scope, props nview.Props) *nview.Node {
		return nview.Element("main", nil, props.Children())
	})
	section := nview.Func("Section", func(_ *nview.Scope, props nview.Props) *nview.Node {
		return nview.Element("section", nil, props.Children())
	})

	greeting := ndeps.UseDeps(func(_ any, actions ndeps.BoundActions) nview.Props {
		return nview.Props{"greet": actions["greet"]}
	})(nview.Func("Greeting", func(_ *nview.Scope, props nview.Props) *nview.Node {
		greet, ok := props["greet"].(func(string) string)
		if !ok {
			return nview.Element("p", nview.Props{"class": "missing"}, "no greeting available")
		}
		return nview.Element("p", nil, greet(props["name"].(string)))
	}))

	visitors := ndeps.UseDeps(nil)(nview.Func("Visitors", func(_ *nview.Scope, props nview.Props) *nview.Node {
		actions, _ := props["actions"].(ndeps.BoundActions)
		count, err := actions.Call("visitors.count")
		if err != nil {
			return nview.Element("p", nview.Props{"class": "missing"}, "no visitors available")
		}
		list, _ := actions.Call("visitors.list", ", ")
		return nview.Element("p", nview.Props{"data-count": count[0]}, list[0])
	}))

	body := []any{
		nview.New(greeting, nview.Props{"name": opts.name}),
		nview.New(visitors, nil),
	}
	if opts.nested {
		inner, err := ndeps.InjectDeps(&store{Greeting: "Welcome back", Visitors: s.Visitors}, demoActions)
		if err != nil {
			return nil, err
		}
		body = append(body, nview.New(inner(section), nil,
			nview.New(greeting, nview.Props{"name": opts.name})))
	}
	if opts.noProvider {
		return nview.New(page, nil, body...), nil
	}
	inject, err := ndeps.InjectDeps(s, demoActions)
	if err != nil {
		return nil, fmt.Errorf("inject: %s", ndeps.DetailedError(err))
	}
	return nview.New(inject(page), nil, body...), nil
}
