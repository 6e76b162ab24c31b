package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/sellermate/negotiator/pkg/types"
)

func rulesCmd() *cobra.Command {
	rulesRoot := &cobra.Command{
		Use:   "rules",
		Short: "Manage negotiation rules",
		Long: "Manage the negotiation rules that decide how incoming offers are\n" +
			"handled. Rules are evaluated by priority, highest first; the first\n" +
			"matching rule wins.",
	}

	rulesRoot.AddCommand(
		rulesListCmd(),
		rulesDefaultsCmd(),
		rulesCreateCmd(),
		rulesUpdateCmd(),
		rulesEnableCmd(),
		rulesDisableCmd(),
		rulesDeleteCmd(),
	)

	return rulesRoot
}

func rulesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List rules in evaluation order",
		Example: `  nego rules list --user seller-1
  nego rules list --user seller-1 --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			rules, err := c.ListRules(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(rules)
			}
			if len(rules) == 0 {
				fmt.Println("No rules found.")
				return nil
			}
			return printRulesTable(rules)
		},
	}
}

func rulesDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Show the built-in default rules",
		Long: "Show the rule set applied to sellers who have not created any rules\n" +
			"of their own. Creating a first rule replaces these entirely.",
		Example: `  nego rules defaults
  nego rules defaults --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			defaults := domain.DefaultRules()
			if jsonOutput() {
				return outputJSON(defaults)
			}
			return printRulesTable(defaults)
		},
	}
}

func rulesCreateCmd() *cobra.Command {
	var (
		ruleName       string
		ruleDesc       string
		ruleCondition  string
		ruleThreshold  float64
		ruleAction     string
		ruleCounterPct float64
		rulePriority   int
		ruleDisabled   bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a negotiation rule",
		Long: "Create a rule that matches offers by condition and threshold and\n" +
			"applies an action. Counter rules also need --counter-pct, the\n" +
			"counter-offer as a percentage of the list price.",
		Example: `  # Auto-accept offers at 90%+ of list price
  nego rules create --user seller-1 --name "accept strong" \
    --condition percentage_above --threshold 90 --action accept --priority 10

  # Counter mid-range offers at 85% of list price
  nego rules create --user seller-1 --name "counter band" \
    --condition percentage_above --threshold 70 --action counter \
    --counter-pct 85 --priority 5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if ruleName == "" || ruleCondition == "" || ruleAction == "" {
				return fmt.Errorf("--name, --condition, and --action are required")
			}

			r := domain.NegotiationRule{
				Name:        ruleName,
				Description: ruleDesc,
				Condition:   domain.RuleCondition(ruleCondition),
				Threshold:   ruleThreshold,
				Action:      domain.RuleAction(ruleAction),
				Priority:    rulePriority,
				Enabled:     !ruleDisabled,
			}
			if cmd.Flags().Changed("counter-pct") {
				r.CounterPercentage = &ruleCounterPct
			}

			c, err := newClient()
			if err != nil {
				return err
			}
			created, err := c.CreateRule(context.Background(), &r)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(created)
			}
			fmt.Printf("Rule created: %s (%s)\n", created.Name, created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&ruleName, "name", "", "rule name")
	cmd.Flags().StringVar(&ruleDesc, "description", "", "rule description")
	cmd.Flags().
		StringVar(&ruleCondition, "condition", "", "condition (percentage_above, absolute_above, buyer_rating, item_age, views_count, offer_count)")
	cmd.Flags().Float64Var(&ruleThreshold, "threshold", 0, "condition threshold")
	cmd.Flags().StringVar(&ruleAction, "action", "", "action (accept, reject, counter, ignore)")
	cmd.Flags().
		Float64Var(&ruleCounterPct, "counter-pct", 0, "counter-offer as a percentage of list price")
	cmd.Flags().IntVar(&rulePriority, "priority", 0, "evaluation priority, highest first")
	cmd.Flags().BoolVar(&ruleDisabled, "disabled", false, "create the rule disabled")

	return cmd
}

func rulesUpdateCmd() *cobra.Command {
	var (
		ruleName       string
		ruleDesc       string
		ruleThreshold  float64
		ruleCounterPct float64
		rulePriority   int
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a rule's tunable fields",
		Long: "Update a rule's name, description, threshold, counter percentage,\n" +
			"or priority. Condition and action are fixed at creation; create a\n" +
			"new rule to change them.",
		Example: `  nego rules update rule-1 --user seller-1 --threshold 92
  nego rules update rule-1 --user seller-1 --priority 8 --counter-pct 88`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := map[string]any{}
			if cmd.Flags().Changed("name") {
				fields["name"] = ruleName
			}
			if cmd.Flags().Changed("description") {
				fields["description"] = ruleDesc
			}
			if cmd.Flags().Changed("threshold") {
				fields["threshold"] = ruleThreshold
			}
			if cmd.Flags().Changed("counter-pct") {
				fields["counter_percentage"] = ruleCounterPct
			}
			if cmd.Flags().Changed("priority") {
				fields["priority"] = rulePriority
			}
			if len(fields) == 0 {
				return fmt.Errorf("no fields to update")
			}

			c, err := newClient()
			if err != nil {
				return err
			}
			updated, err := c.UpdateRule(context.Background(), args[0], fields)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(updated)
			}
			return printRuleDetail(updated)
		},
	}
	cmd.Flags().StringVar(&ruleName, "name", "", "rule name")
	cmd.Flags().StringVar(&ruleDesc, "description", "", "rule description")
	cmd.Flags().Float64Var(&ruleThreshold, "threshold", 0, "condition threshold")
	cmd.Flags().
		Float64Var(&ruleCounterPct, "counter-pct", 0, "counter-offer as a percentage of list price")
	cmd.Flags().IntVar(&rulePriority, "priority", 0, "evaluation priority, highest first")

	return cmd
}

func rulesEnableCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "enable <id>",
		Short:   "Enable a rule",
		Example: `  nego rules enable rule-1 --user seller-1`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runRuleSetEnabled(args[0], true)
		},
	}
}

func rulesDisableCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "disable <id>",
		Short:   "Disable a rule",
		Example: `  nego rules disable rule-1 --user seller-1`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runRuleSetEnabled(args[0], false)
		},
	}
}

func rulesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a rule",
		Example: `  nego rules delete rule-1 --user seller-1`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			if err := c.DeleteRule(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Rule %s deleted.\n", args[0])
			return nil
		},
	}
}

func runRuleSetEnabled(id string, enabled bool) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	if _, err := c.UpdateRule(context.Background(), id, map[string]any{"enabled": enabled}); err != nil {
		return err
	}

	action := "enabled"
	if !enabled {
		action = "disabled"
	}
	fmt.Printf("Rule %s %s.\n", id, action)
	return nil
}
