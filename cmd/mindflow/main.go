package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"mindflow/internal/bootstrap"
	"mindflow/internal/platform/clock"
	"mindflow/internal/platform/config"
	"mindflow/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "mindflow",
		Short:         "Digital wellness tracker: day transition, screen time, focus and streaks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", defaultDataDir(), "data directory")

	root.AddCommand(newInitCmd(&dataDir))
	root.AddCommand(newCheckCmd(&dataDir))
	root.AddCommand(newDaemonCmd(&dataDir))
	root.AddCommand(newCleanupCmd(&dataDir))
	root.AddCommand(newStatusCmd(&dataDir))
	root.AddCommand(newScreenCmd(&dataDir))
	root.AddCommand(newNotifyCmd(&dataDir))
	root.AddCommand(newFocusCmd(&dataDir))
	root.AddCommand(newScoreCmd(&dataDir))
	root.AddCommand(newWellnessCmd(&dataDir))
	root.AddCommand(newStreakCmd(&dataDir))
	root.AddCommand(newNoteCmd(&dataDir))
	root.AddCommand(newUserCmd(&dataDir))
	root.AddCommand(newTUICmd(&dataDir))
	root.AddCommand(newDevBackendCmd(&dataDir))
	return root
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mindflow"
	}
	return filepath.Join(home, ".mindflow")
}

func loadConfig(dataDir string) (config.Config, *slog.Logger, error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logging.New(cfg.Log, os.Stderr), nil
}

// withApp builds the application, runs fn and closes the store afterwards.
func withApp(dataDir string, fn func(ctx context.Context, app *bootstrap.App) error) error {
	cfg, logger, err := loadConfig(dataDir)
	if err != nil {
		return err
	}
	app, err := bootstrap.New(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("close store", slog.Any("error", err))
		}
	}()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return fn(ctx, app)
}

func printTransition(cmd *cobra.Command, transitioned bool, today, previous string, failed []string) {
	if !transitioned {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "no transition: already active on %s\n", today)
		return
	}
	if previous == "" {
		previous = "never"
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "day transition %s -> %s\n", previous, today)
	if len(failed) > 0 {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "failed steps: %s\n", strings.Join(failed, ", "))
	}
}

func newInitCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Register the midnight task and alarm, then check the date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.TransitionCLI.Initialize(ctx)
				if err != nil {
					return err
				}
				printTransition(cmd, out.Transitioned, out.Today, out.Previous, out.FailedSteps)
				return nil
			})
		},
	}
}

func newCheckCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run the day transition if the date changed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.TransitionCLI.Check(ctx)
				if err != nil {
					return err
				}
				printTransition(cmd, out.Transitioned, out.Today, out.Previous, out.FailedSteps)
				return nil
			})
		},
	}
}

func newDaemonCmd(dataDir *string) *cobra.Command {
	var serveBackend bool
	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Run the background scheduler until interrupted",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				return bootstrap.RunDaemon(ctx, app, serveBackend)
			})
		},
	}
	cmd.Flags().BoolVar(&serveBackend, "dev-backend", false, "also serve the reference backend")
	return cmd
}

func newCleanupCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Remove the midnight task and alarm registrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				app.TransitionCLI.Cleanup(ctx)
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cleanup done")
				return nil
			})
		},
	}
}

func newStatusCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show day-transition bookkeeping",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				st, err := app.Status(ctx)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				last := st.LastActiveDate
				if last == "" {
					last = "never"
				}
				_, _ = fmt.Fprintf(w, "today=%s last_active=%s user=%s\n", st.Today, last, st.UserID)
				_, _ = fmt.Fprintf(w, "screen_time=%s notifications=%d note_submitted=%t\n", st.ScreenTime, st.Notifications, st.NoteSubmitted)
				_, _ = fmt.Fprintf(w, "tasks=%s\n", strings.Join(st.Tasks, ","))
				for _, a := range st.Alarms {
					_, _ = fmt.Fprintf(w, "alarm %s next=%s\n", a.ID, a.Next.Format("2006-01-02 15:04"))
				}
				switch {
				case st.DaemonRunning:
					_, _ = fmt.Fprintf(w, "daemon running pid=%d\n", st.DaemonPID)
				case st.DaemonPID != 0:
					_, _ = fmt.Fprintf(w, "daemon stale pid=%d\n", st.DaemonPID)
				default:
					_, _ = fmt.Fprintln(w, "daemon not running")
				}
				return nil
			})
		},
	}
}

func newScreenCmd(dataDir *string) *cobra.Command {
	screen := &cobra.Command{Use: "screen", Short: "Screen-time tracking"}

	foregroundCmd := &cobra.Command{
		Use:   "foreground",
		Short: "Start a foreground interval",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.UsageCLI.Foreground(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "tracking since %s, total %s\n", out.SessionStart.Format("15:04:05"), out.Formatted)
				return nil
			})
		},
	}

	backgroundCmd := &cobra.Command{
		Use:   "background",
		Short: "Close the open foreground interval",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.UsageCLI.Background(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s, total %s\n", out.Added.Round(time.Second), out.Formatted)
				return nil
			})
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show today's screen time",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.UsageCLI.ScreenTime(ctx)
				if err != nil {
					return err
				}
				state := "idle"
				if out.Tracking {
					state = "tracking"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", out.Formatted, state)
				return nil
			})
		},
	}

	screen.AddCommand(foregroundCmd, backgroundCmd, showCmd)
	return screen
}

func newNotifyCmd(dataDir *string) *cobra.Command {
	notify := &cobra.Command{Use: "notify", Short: "Notification counter"}

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "Count one received notification",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.UsageCLI.RecordNotification(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "notifications today: %d\n", out.Count)
				return nil
			})
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show today's notification count",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.UsageCLI.NotificationCount(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "notifications today: %d\n", out.Count)
				return nil
			})
		},
	}

	notify.AddCommand(recordCmd, showCmd)
	return notify
}

func newFocusCmd(dataDir *string) *cobra.Command {
	focus := &cobra.Command{Use: "focus", Short: "Focus sessions"}

	var goal string
	startCmd := &cobra.Command{
		Use:   "start",
		Short: "Start a focus session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.FocusCLI.Start(ctx, goal)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "focus started (%s) goal=%s\n", out.SessionID, out.Goal)
				return nil
			})
		},
	}
	startCmd.Flags().StringVar(&goal, "goal", "", "session goal, e.g. 25m (defaults to the stored goal)")

	var sessionID string
	endCmd := &cobra.Command{
		Use:   "end",
		Short: "End the active focus session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.FocusCLI.End(ctx, sessionID)
				if err != nil {
					return err
				}
				if !out.Recorded {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "focus ended (%s), under a minute, nothing recorded\n", out.SessionID)
					return nil
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "focus ended (%s), %d min recorded\n", out.SessionID, out.DurationMin)
				return nil
			})
		},
	}
	endCmd.Flags().StringVar(&sessionID, "session", "", "session id (defaults to the active session)")

	recordCmd := &cobra.Command{
		Use:   "record <minutes>",
		Short: "Record a finished focus session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid minutes %q: %w", args[0], err)
			}
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.FocusCLI.Record(ctx, minutes)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "recorded %.1f min at %s\n", out.Minutes, out.Timestamp.Format("15:04"))
				return nil
			})
		},
	}

	todayCmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's focus minutes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.FocusCLI.Today(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%.1f min in %d sessions\n", out.Minutes, out.Sessions)
				return nil
			})
		},
	}

	var setGoal string
	goalCmd := &cobra.Command{
		Use:   "goal",
		Short: "Show or set the session goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				if setGoal != "" {
					if err := app.FocusCLI.SetGoal(ctx, setGoal); err != nil {
						return err
					}
				}
				goal, err := app.FocusCLI.Goal(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "goal %s\n", goal)
				return nil
			})
		},
	}
	goalCmd.Flags().StringVar(&setGoal, "set", "", "new goal, e.g. 45m or 1h30m")

	focus.AddCommand(startCmd, endCmd, recordCmd, todayCmd, goalCmd)
	return focus
}

func newScoreCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "score",
		Short: "Compute today's focus score",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out := app.WellnessCLI.Score(ctx)
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d (%s)\n", out.Score, out.Band)
				return nil
			})
		},
	}
}

func newWellnessCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "wellness",
		Short: "Show the wellness snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out := app.WellnessCLI.Snapshot(ctx)
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "focus score:   %d (%s)\n", out.FocusScore, out.Band)
				_, _ = fmt.Fprintf(w, "screen time:   %s\n", out.ScreenTime)
				_, _ = fmt.Fprintf(w, "notifications: %d\n", out.Notifications)
				_, _ = fmt.Fprintf(w, "session goal:  %s\n", out.SessionGoal)
				return nil
			})
		},
	}
}

func newStreakCmd(dataDir *string) *cobra.Command {
	streak := &cobra.Command{Use: "streak", Short: "Streak and daily tasks"}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the last mirrored streak",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.StreakCLI.Show(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "streak %d (best %d) %s: %s\ntoday %d/%d (%.0f%%)\n",
					out.Current, out.Longest, out.Status, out.Message, out.TodayCompleted, out.TodayTotal, out.Percent)
				return nil
			})
		},
	}

	refreshCmd := &cobra.Command{
		Use:   "refresh",
		Short: "Fetch tasks and streak from the backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.StreakCLI.Refresh(ctx)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "streak %d (best %d) %s\n", out.Streak.Current, out.Streak.Longest, out.Streak.Status)
				for _, t := range out.Tasks {
					mark := " "
					if t.Completed {
						mark = "x"
					}
					_, _ = fmt.Fprintf(w, "[%s] %s %s\n", mark, t.ID, t.Title)
				}
				return nil
			})
		},
	}

	completeCmd := &cobra.Command{
		Use:   "complete <task-id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.StreakCLI.Complete(ctx, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "completed %s, today %d/%d, streak %d (%s)\n",
					out.Task.Title, out.Streak.TodayCompleted, out.Streak.TodayTotal, out.Streak.Current, out.Streak.Status)
				return nil
			})
		},
	}

	gardenCmd := &cobra.Command{
		Use:   "garden",
		Short: "Show the streak garden",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.StreakCLI.Garden(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s at %d days (%.0f%% grown)\n", out.Stage, out.Streak, out.Progress*100)
				return nil
			})
		},
	}

	calendarCmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the last 30 days",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.StreakCLI.Calendar(ctx)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				for _, d := range out.Days {
					_, _ = fmt.Fprintf(w, "%s %s\n", d.Date, d.Status)
				}
				_, _ = fmt.Fprintf(w, "current streak %d\n", out.Current)
				return nil
			})
		},
	}

	streak.AddCommand(showCmd, refreshCmd, completeCmd, gardenCmd, calendarCmd)
	return streak
}

func newNoteCmd(dataDir *string) *cobra.Command {
	note := &cobra.Command{Use: "note", Short: "Daily reflection note"}

	var mood int
	submitCmd := &cobra.Command{
		Use:   "submit <text>",
		Short: "Write today's note",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.NoteCLI.Submit(ctx, strings.Join(args, " "), mood)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "note saved (%s) %s\n", out.ID, out.Path)
				return nil
			})
		},
	}
	submitCmd.Flags().IntVar(&mood, "mood", 0, "mood from 1 to 10")

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether today's note was written",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.NoteCLI.Status(ctx)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "submitted=%t\n", out.Submitted)
				for _, n := range out.Notes {
					_, _ = fmt.Fprintf(w, "%s %s\n", n.CreatedAt.Format("15:04"), n.Title)
				}
				return nil
			})
		},
	}

	note.AddCommand(submitCmd, statusCmd)
	return note
}

func newUserCmd(dataDir *string) *cobra.Command {
	user := &cobra.Command{Use: "user", Short: "Backend user identity"}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the user id sent to the backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), app.Identity.UserID(ctx))
				return nil
			})
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <user-id>",
		Short: "Store the user id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.Identity.SetUserID(ctx, args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "user set to %s\n", args[0])
				return nil
			})
		},
	}

	user.AddCommand(showCmd, setCmd)
	return user
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal dashboard",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, _, err := loadConfig(*dataDir)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
				return fmt.Errorf("create data dir: %w", err)
			}
			logFile, err := os.OpenFile(filepath.Join(cfg.DataDir, "tui.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return fmt.Errorf("open tui log: %w", err)
			}
			defer logFile.Close()
			logger := logging.New(cfg.Log, logFile)

			app, err := bootstrap.New(cfg, logger)
			if err != nil {
				return err
			}
			defer app.Close()
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
			defer stop()
			return bootstrap.RunTUI(ctx, app)
		},
	}
}

func newDevBackendCmd(dataDir *string) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "devbackend",
		Short: "Serve the reference backend-of-record",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig(*dataDir)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.DevBackend.Addr = addr
			}
			loc, err := cfg.Schedule.Location()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return bootstrap.RunDevBackend(ctx, cfg, logger, clock.SystemClock{Location: loc})
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8000)")
	return cmd
}
