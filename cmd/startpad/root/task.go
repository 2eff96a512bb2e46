package root

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/marcandregoldmann-prog/startpad-xp-revival/internal/engine"
	"github.com/marcandregoldmann-prog/startpad-xp-revival/internal/ui"
)

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(
		newTaskAddCmd(),
		newTaskListCmd(),
		newTaskTodayCmd(),
		newTaskDoneCmd(),
		newTaskEditCmd(),
		newTaskArchiveCmd(),
		newTaskRmCmd(),
		newTaskSubCmd(),
		newTaskCheckCmd(),
	)
	return cmd
}

func newTaskAddCmd() *cobra.Command {
	var category string
	var xp int
	var repeat string
	var priority string
	var due string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := svc.CreateTask(ctx, args[0],
				engine.TaskCategory(category), xp,
				engine.TaskRepeat(repeat), engine.TaskPriority(priority), due)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %q (%s, +%d XP) — id %s\n",
				ui.IconTask, t.Title, t.Category, t.XP, ui.Muted.Render(t.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", string(engine.DefaultCategory), "Category (Haushalt|Gesundheit|Routine|Sonstiges)")
	cmd.Flags().IntVarP(&xp, "xp", "x", 10, "XP reward for completing the task")
	cmd.Flags().StringVarP(&repeat, "repeat", "r", string(engine.RepeatManual), "Repeat (täglich|wöchentlich|manuell)")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Priority (hoch|mittel|niedrig)")
	cmd.Flags().StringVarP(&due, "due", "d", "", "Due date (YYYY-MM-DD)")

	return cmd
}

func newTaskListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			tasks, err := svc.Tasks(ctx)
			if err != nil {
				return err
			}
			completions, err := svc.Completions(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTask, "Tasks"))
			printed := 0
			for _, t := range tasks {
				if t.IsArchived && !all {
					continue
				}
				printTask(cmd, t, completions)
				printed++
			}
			if printed == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No tasks yet. Try: startpad task add \"…\""))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include archived tasks")

	return cmd
}

func newTaskTodayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "List the tasks visible today",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			tasks, err := svc.TodaysTasks(ctx)
			if err != nil {
				return err
			}
			completions, err := svc.Completions(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTask, "Heute"))
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing due today."))
				return nil
			}
			for _, t := range tasks {
				printTask(cmd, t, completions)
			}
			return nil
		},
	}

	return cmd
}

func printTask(cmd *cobra.Command, t engine.Task, completions []engine.TaskCompletion) {
	check := ui.Checkbox(engine.IsCompletedToday(t.ID, completions, time.Now()))
	meta := []string{string(t.Category), fmt.Sprintf("+%d XP", t.XP)}
	if t.Repeat != engine.RepeatManual {
		meta = append(meta, string(t.Repeat))
	}
	if t.Priority != "" {
		meta = append(meta, string(t.Priority))
	}
	if t.DueDate != "" {
		meta = append(meta, "due "+t.DueDate)
	}
	if t.IsArchived {
		meta = append(meta, "archived")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", check, t.Title, ui.Muted.Render("("+strings.Join(meta, ", ")+") "+t.ID))
	for _, st := range t.Subtasks {
		fmt.Fprintf(cmd.OutOrStdout(), "    %s %s %s\n", ui.Checkbox(st.Completed), st.Title, ui.Muted.Render(st.ID))
	}
}

func newTaskDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Complete a task for today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			tasks, err := svc.Tasks(ctx)
			if err != nil {
				return err
			}
			var task *engine.Task
			for i := range tasks {
				if tasks[i].ID == args[0] {
					task = &tasks[i]
					break
				}
			}
			if task == nil {
				return fmt.Errorf("task %s not found", args[0])
			}

			done, err := svc.IsTaskCompletedToday(ctx, task.ID)
			if err != nil {
				return err
			}
			if done {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Already completed today."))
				return nil
			}

			before, err := svc.Stats(ctx)
			if err != nil {
				return err
			}
			stats, err := svc.CompleteTask(ctx, task.ID, task.XP)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", ui.IconDone, task.Title, ui.Good.Render(fmt.Sprintf("+%d XP", task.XP)))
			fmt.Fprintf(cmd.OutOrStdout(), "%s streak %d · level %d\n", ui.IconStreak, stats.CurrentStreak, stats.Level)
			if stats.Level > before.Level {
				fmt.Fprintln(cmd.OutOrStdout(), ui.BadgeLevelUp)
			}
			return nil
		},
	}

	return cmd
}

func newTaskEditCmd() *cobra.Command {
	var title, category, repeat, priority, due, note string
	var xp int

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit task fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var upd engine.TaskUpdate
			if cmd.Flags().Changed("title") {
				upd.Title = &title
			}
			if cmd.Flags().Changed("category") {
				c := engine.TaskCategory(category)
				upd.Category = &c
			}
			if cmd.Flags().Changed("xp") {
				upd.XP = &xp
			}
			if cmd.Flags().Changed("repeat") {
				r := engine.TaskRepeat(repeat)
				upd.Repeat = &r
			}
			if cmd.Flags().Changed("priority") {
				p := engine.TaskPriority(priority)
				upd.Priority = &p
			}
			if cmd.Flags().Changed("due") {
				upd.DueDate = &due
			}
			if cmd.Flags().Changed("note") {
				upd.Note = &note
			}
			if upd == (engine.TaskUpdate{}) {
				return errors.New("nothing to change; pass at least one flag")
			}

			t, err := svc.UpdateTask(ctx, args[0], upd)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Updated %q\n", ui.IconTask, t.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVarP(&category, "category", "c", "", "New category")
	cmd.Flags().IntVarP(&xp, "xp", "x", 0, "New XP reward")
	cmd.Flags().StringVarP(&repeat, "repeat", "r", "", "New repeat rule")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "New priority")
	cmd.Flags().StringVarP(&due, "due", "d", "", "New due date (YYYY-MM-DD, empty clears)")
	cmd.Flags().StringVar(&note, "note", "", "New note")

	return cmd
}

func newTaskArchiveCmd() *cobra.Command {
	var restore bool

	cmd := &cobra.Command{
		Use:   "archive <id>",
		Short: "Archive a task (or restore with --restore)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := svc.ArchiveTask(ctx, args[0], !restore)
			if err != nil {
				return err
			}
			verb := "Archived"
			if restore {
				verb = "Restored"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %q\n", ui.IconTask, verb, t.Title)
			return nil
		},
	}

	cmd.Flags().BoolVar(&restore, "restore", false, "Bring the task back to the active list")

	return cmd
}

func newTaskRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.DeleteTask(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Task deleted."))
			return nil
		},
	}

	return cmd
}

func newTaskSubCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sub <task-id> <title>",
		Short: "Add a subtask",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := svc.AddSubtask(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %q now has %d subtasks\n", ui.IconTask, t.Title, len(t.Subtasks))
			return nil
		},
	}

	return cmd
}

func newTaskCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <task-id> <subtask-id>",
		Short: "Toggle a subtask",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := svc.ToggleSubtask(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			for _, st := range t.Subtasks {
				if st.ID == args[1] {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Checkbox(st.Completed), st.Title)
				}
			}
			return nil
		},
	}

	return cmd
}
