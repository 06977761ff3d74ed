package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"studydash/internal/bootstrap"
	"studydash/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var planPath string

	root := &cobra.Command{
		Use:           "studydash",
		Short:         "Study planning dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&planPath, "plan", ".", "study plan directory")

	root.AddCommand(newTUICmd(&planPath))
	root.AddCommand(newTaskCmd(&planPath))
	root.AddCommand(newFilterCmd(&planPath))
	root.AddCommand(newTimerCmd(&planPath))
	root.AddCommand(newStatsCmd(&planPath))
	root.AddCommand(newReindexCmd(&planPath))
	return root
}

func loadApp(planPath string) (*bootstrap.App, error) {
	cfg, err := config.New(planPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(planPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the studydash terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*planPath)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newTaskCmd(planPath *string) *cobra.Command {
	task := &cobra.Command{Use: "task", Short: "Task list commands"}

	var category, due string
	add := &cobra.Command{
		Use:   "add <title…>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*planPath)
			if err != nil {
				return err
			}
			out, err := app.BoardCLI.AddTask(context.Background(), strings.Join(args, " "), category, due)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", out.Title, out.ID)
			return nil
		},
	}
	add.Flags().StringVar(&category, "category", "", "task category (required)")
	add.Flags().StringVar(&due, "due", "", "due date, e.g. 2026-09-15")

	task.AddCommand(add)

	task.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List tasks matching the current filter",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*planPath)
			if err != nil {
				return err
			}
			overview, err := app.BoardCLI.Overview(context.Background())
			if err != nil {
				return err
			}
			if len(overview.Tasks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no tasks")
				return nil
			}
			for _, t := range overview.Tasks {
				mark := " "
				if t.Completed {
					mark = "x"
				}
				line := fmt.Sprintf("[%s] %s\t%s\t%s", mark, t.ID, t.Category, t.Title)
				if t.DueDate != "" {
					line += "\tdue " + t.DueDate
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	})

	var editTitle, editCategory, editDue string
	edit := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task's fields, keeping its completion state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*planPath)
			if err != nil {
				return err
			}
			out, err := app.BoardCLI.UpdateTask(context.Background(), args[0], editTitle, editCategory, editDue)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated %s (%s)\n", out.Title, out.ID)
			return nil
		},
	}
	edit.Flags().StringVar(&editTitle, "title", "", "new title")
	edit.Flags().StringVar(&editCategory, "category", "", "new category")
	edit.Flags().StringVar(&editDue, "due", "", "new due date")
	task.AddCommand(edit)

	task.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*planPath)
			if err != nil {
				return err
			}
			if err := app.BoardCLI.RemoveTask(context.Background(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return nil
		},
	})

	task.AddCommand(&cobra.Command{
		Use:   "toggle <id>",
		Short: "Toggle a task between open and done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*planPath)
			if err != nil {
				return err
			}
			out, err := app.BoardCLI.ToggleTask(context.Background(), args[0])
			if err != nil {
				return err
			}
			status := "open"
			if out.Completed {
				status = "done"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", out.Title, status)
			return nil
		},
	})

	return task
}

func newFilterCmd(planPath *string) *cobra.Command {
	filter := &cobra.Command{Use: "filter", Short: "View filter commands"}

	filter.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current filter",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*planPath)
			if err != nil {
				return err
			}
			overview, err := app.BoardCLI.Overview(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "status: %s\ncategory: %s\n",
				overview.Filter.Status, overview.Filter.Category)
			return nil
		},
	})

	filter.AddCommand(&cobra.Command{
		Use:   "status <all|open|done>",
		Short: "Set the status filter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*planPath)
			if err != nil {
				return err
			}
			out, err := app.BoardCLI.SetStatusFilter(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "status filter: %s\n", out.Status)
			return nil
		},
	})

	filter.AddCommand(&cobra.Command{
		Use:   "category <name|all>",
		Short: "Set the category filter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*planPath)
			if err != nil {
				return err
			}
			out, err := app.BoardCLI.SetCategoryFilter(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "category filter: %s\n", out.Category)
			return nil
		},
	})

	return filter
}

func newTimerCmd(planPath *string) *cobra.Command {
	timer := &cobra.Command{Use: "timer", Short: "Work/break countdown commands"}

	printState := func(cmd *cobra.Command, running, work bool, remaining int) {
		label := "break"
		if work {
			label = "work"
		}
		status := "paused"
		if running {
			status = "running"
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s session %s, %02d:%02d remaining\n",
			label, status, remaining/60, remaining%60)
	}

	timer.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the timer, replaying time elapsed since last save",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*planPath)
			if err != nil {
				return err
			}
			state, err := app.TimerCLI.Load(context.Background())
			if err != nil {
				return err
			}
			printState(cmd, state.Running, state.WorkSession, state.Remaining)
			return nil
		},
	})

	timer.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Start or pause the countdown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*planPath)
			if err != nil {
				return err
			}
			state, err := app.TimerCLI.ToggleNow(context.Background())
			if err != nil {
				return err
			}
			printState(cmd, state.Running, state.WorkSession, state.Remaining)
			return nil
		},
	})

	timer.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Return to a paused 25 minute work session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*planPath)
			if err != nil {
				return err
			}
			state, err := app.TimerCLI.Reset(context.Background())
			if err != nil {
				return err
			}
			printState(cmd, state.Running, state.WorkSession, state.Remaining)
			return nil
		},
	})

	return timer
}

func newStatsCmd(planPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show completion counts and per-category chart data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*planPath)
			if err != nil {
				return err
			}
			overview, err := app.BoardCLI.Overview(context.Background())
			if err != nil {
				return err
			}
			tally := overview.Tally
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "open: %d\ncompleted: %d\ntotal: %d\nprogress: %d%%\n",
				tally.Open, tally.Completed, tally.Total, tally.Percentage)
			for _, p := range overview.Chart {
				if p.Placeholder {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), p.Name)
					continue
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", p.Name, p.Completed)
			}
			return nil
		},
	}
}

func newReindexCmd(planPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the sqlite task index from the task record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*planPath)
			if err != nil {
				return err
			}
			if err := app.BoardCLI.Reindex(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reindexed")
			return nil
		},
	}
}
