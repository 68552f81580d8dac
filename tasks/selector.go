package tasks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"objkit/css"
	"objkit/selector"
)

var combinators = map[string]selector.Combinator{
	"+":          selector.Adjacent,
	"~":          selector.Sibling,
	">":          selector.Child,
	"descendant": selector.Descendant,
}

// parsePart splits "kind=value" argument. Value may contain '='.
func parsePart(arg string) (selector.Category, string, error) {
	kind, value, ok := strings.Cut(arg, "=")
	if !ok {
		return 0, "", fmt.Errorf("malformed selector part '%s', expected kind=value", arg)
	}
	if kind == "attr" {
		return selector.CategoryAttribute, value, nil
	}
	cat, err := selector.ParseCategory(kind)
	if err != nil {
		return 0, "", fmt.Errorf("malformed selector part '%s': %w", arg, err)
	}
	return cat, value, nil
}

// buildSelector folds arguments left to right. Combinator arguments close
// current compound selector and combine it with everything built so far.
func buildSelector(b selector.Builder, args []string) (*selector.Selector, error) {
	if len(args) == 0 {
		return nil, errors.New("no selector parts specified")
	}

	var (
		result  *selector.Selector
		pending selector.Combinator
		current = b.New()
		empty   = true
	)
	fold := func() error {
		if empty {
			return errors.New("combinator must be surrounded by selector parts")
		}
		if result == nil {
			result = current
		} else {
			result = b.Combine(result, pending, current)
		}
		current, empty = b.New(), true
		return nil
	}

	for _, arg := range args {
		if comb, ok := combinators[arg]; ok {
			if err := fold(); err != nil {
				return nil, err
			}
			pending = comb
			continue
		}
		cat, value, err := parsePart(arg)
		if err != nil {
			return nil, err
		}
		current.Add(cat, value)
		empty = false
	}
	if err := fold(); err != nil {
		return nil, err
	}
	return result, nil
}

func parseRules(args []string) (map[string]string, error) {
	if len(args) == 0 {
		return nil, nil
	}
	props := make(map[string]string, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || len(strings.TrimSpace(name)) == 0 {
			return nil, fmt.Errorf("malformed rule '%s', expected property=value", arg)
		}
		props[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}
	return props, nil
}

// Selector builds selector from command line parts and prints it, or
// stylesheet rule when properties are requested.
func Selector(ctx context.Context, cmd *cli.Command) error {
	env, log, err := prepare(ctx, cmd)
	if err != nil {
		return err
	}

	lint, strict := true, false
	if env.Cfg != nil {
		lint, strict = env.Cfg.Selector.Lint, env.Cfg.Selector.Strict
	}
	if cmd.IsSet("lint") {
		lint = cmd.Bool("lint")
	}
	if cmd.IsSet("strict") {
		strict = cmd.Bool("strict")
	}

	props, err := parseRules(cmd.StringSlice("rule"))
	if err != nil {
		return err
	}

	sel, err := buildSelector(env.Selectors(), cmd.Args().Slice())
	if err != nil {
		return err
	}

	var (
		out      strings.Builder
		warnings []string
	)
	if props == nil {
		text, err := sel.Build()
		if err != nil {
			return fmt.Errorf("unable to build selector: %w", err)
		}
		if lint {
			for _, w := range css.NewLinter(env.Log).Lint(text) {
				warnings = append(warnings, text+": "+w)
			}
		}
		out.WriteString(text)
		out.WriteString("\n")
	} else {
		sheet := css.NewStylesheet(env.Log)
		if err := sheet.Add(sel, props); err != nil {
			return err
		}
		if lint {
			warnings = sheet.Warnings
		}
		if _, err := sheet.WriteTo(&out); err != nil {
			return err
		}
	}

	for _, w := range warnings {
		log.Warn("Selector lint", zap.String("warning", w))
	}
	if strict && len(warnings) > 0 {
		return fmt.Errorf("selector did not pass lint: %s", strings.Join(warnings, "; "))
	}

	env.Rpt.StoreData("selector.css", []byte(out.String()))

	_, err = fmt.Fprint(output(cmd), out.String())
	return err
}
