package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/riceboard/rice"
	"github.com/arthur-debert/riceboard/store"
	"github.com/arthur-debert/riceboard/types"
)

func (cli *CLI) newAddCommand() *cobra.Command {
	var (
		description string
		reach       string
		impact      string
		confidence  string
		effort      string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a feature to the board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := cli.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			feature, err := s.Add(args[0])
			if err != nil {
				return err
			}

			req := store.UpdateRequest{}
			if description != "" {
				req.Description = &description
			}
			if reach != "" {
				n, err := strconv.ParseFloat(reach, 64)
				if err != nil || !rice.IsValidReach(n) {
					return fmt.Errorf("invalid reach: %q", reach)
				}
				req.Reach = &n
			}
			if req.Impact, err = parseFieldFlag(impact, types.ImpactScale); err != nil {
				return err
			}
			if req.Confidence, err = parseFieldFlag(confidence, types.ConfidenceScale); err != nil {
				return err
			}
			if req.Effort, err = parseFieldFlag(effort, types.EffortScale); err != nil {
				return err
			}

			if req != (store.UpdateRequest{}) {
				if feature, err = s.Update(feature.ID, req); err != nil {
					return err
				}
			}

			slog.Info("feature added", "id", feature.ID, "name", feature.Name)
			printFeature(cmd.OutOrStdout(), feature)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Free-text description")
	cmd.Flags().StringVar(&reach, "reach", "", "Reach ("+types.ReachUnit+")")
	cmd.Flags().StringVar(&impact, "impact", "", "Impact: "+strings.Join(types.ImpactScale.Labels(), "|")+" or a number")
	cmd.Flags().StringVar(&confidence, "confidence", "", "Confidence: "+strings.Join(types.ConfidenceScale.Labels(), "|")+" or a number")
	cmd.Flags().StringVar(&effort, "effort", "", "Effort: "+strings.Join(types.EffortScale.Labels(), "|")+" or a number > 0")
	return cmd
}

func (cli *CLI) newListCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show all features in descending priority order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := cli.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			features := s.List()
			if format == "table" {
				renderTable(cmd.OutOrStdout(), features)
				return nil
			}
			return writeInterchange(cmd.OutOrStdout(), features, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table|csv|json|yaml")
	return cmd
}

func (cli *CLI) newSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <id> <field> <value>",
		Short: "Set one field of a feature",
		Long: `Set one field of a feature. Field is one of name, description, reach,
impact, confidence or effort. An empty value clears the field. The id
may be any unique prefix of the feature's identifier.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := cli.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			id, err := resolveFeatureID(s, args[0])
			if err != nil {
				return err
			}
			req, err := buildUpdate(args[1], args[2])
			if err != nil {
				return err
			}

			feature, err := s.Update(id, req)
			if err != nil {
				return err
			}
			slog.Info("feature updated", "id", id, "field", args[1])
			printFeature(cmd.OutOrStdout(), feature)
			return nil
		},
	}
	return cmd
}

func (cli *CLI) newDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a feature",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := cli.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			id, err := resolveFeatureID(s, args[0])
			if err != nil {
				return err
			}
			if err := s.Delete(id); err != nil {
				return err
			}
			slog.Info("feature deleted", "id", id)
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
			return nil
		},
	}
	return cmd
}

// buildUpdate translates a field name and raw value into an
// UpdateRequest, applying the same resolution rules as manual entry
func buildUpdate(field, raw string) (store.UpdateRequest, error) {
	var req store.UpdateRequest
	switch strings.ToLower(field) {
	case "name":
		if raw == "" {
			return req, fmt.Errorf("name cannot be empty")
		}
		req.Name = &raw
	case "description":
		req.Description = &raw
	case "reach":
		if raw == "" {
			req.ClearReach = true
			break
		}
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil || !rice.IsValidReach(n) {
			return req, fmt.Errorf("invalid reach: %q", raw)
		}
		req.Reach = &n
	case "impact":
		value, err := parseFieldFlag(raw, types.ImpactScale)
		if err != nil {
			return req, err
		}
		if value == nil {
			value = &types.Value{}
		}
		req.Impact = value
	case "confidence":
		value, err := parseFieldFlag(raw, types.ConfidenceScale)
		if err != nil {
			return req, err
		}
		if value == nil {
			value = &types.Value{}
		}
		req.Confidence = value
	case "effort":
		value, err := parseFieldFlag(raw, types.EffortScale)
		if err != nil {
			return req, err
		}
		if value == nil {
			value = &types.Value{}
		}
		req.Effort = value
	default:
		return req, fmt.Errorf("unknown field %q (expected name, description, reach, impact, confidence or effort)", field)
	}
	return req, nil
}

// parseFieldFlag resolves a label-or-number flag value. Empty input
// returns nil (flag not given / clear).
func parseFieldFlag(raw string, scale *types.Scale) (*types.Value, error) {
	if raw == "" {
		return nil, nil
	}
	if canon, ok := scale.Canonical(raw); ok {
		v := types.LabelValue(canon)
		return &v, nil
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		v := types.NumberValue(n)
		if scale == types.EffortScale && !rice.IsAllowedEffort(v) {
			return nil, fmt.Errorf("invalid effort: %q (must be greater than zero)", raw)
		}
		return &v, nil
	}
	return nil, fmt.Errorf("unrecognized %s: %q (expected %s or a number)",
		scale.Name, raw, strings.Join(scale.Labels(), ", "))
}

// resolveFeatureID accepts a full identifier or any unique prefix
func resolveFeatureID(s *store.Store, arg string) (string, error) {
	if _, ok := s.Get(arg); ok {
		return arg, nil
	}
	var matches []string
	for _, f := range s.List() {
		if strings.HasPrefix(f.ID, arg) {
			matches = append(matches, f.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no feature with id %q", arg)
	default:
		return "", fmt.Errorf("ambiguous id %q matches %d features", arg, len(matches))
	}
}
