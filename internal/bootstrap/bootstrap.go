package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"mindflow/internal/devbackend"
	dtinadapter "mindflow/internal/modules/daytransition/adapter/in"
	dtoutadapter "mindflow/internal/modules/daytransition/adapter/out"
	dtin "mindflow/internal/modules/daytransition/port/in"
	dtservice "mindflow/internal/modules/daytransition/service"
	dtusecase "mindflow/internal/modules/daytransition/usecase"
	focusinadapter "mindflow/internal/modules/focus/adapter/in"
	focusoutadapter "mindflow/internal/modules/focus/adapter/out"
	focusin "mindflow/internal/modules/focus/port/in"
	focusservice "mindflow/internal/modules/focus/service"
	focususecase "mindflow/internal/modules/focus/usecase"
	noteinadapter "mindflow/internal/modules/note/adapter/in"
	noteoutadapter "mindflow/internal/modules/note/adapter/out"
	notein "mindflow/internal/modules/note/port/in"
	noteservice "mindflow/internal/modules/note/service"
	noteusecase "mindflow/internal/modules/note/usecase"
	streakinadapter "mindflow/internal/modules/streak/adapter/in"
	streakoutadapter "mindflow/internal/modules/streak/adapter/out"
	streakin "mindflow/internal/modules/streak/port/in"
	streakservice "mindflow/internal/modules/streak/service"
	streakusecase "mindflow/internal/modules/streak/usecase"
	usageinadapter "mindflow/internal/modules/usage/adapter/in"
	usageoutadapter "mindflow/internal/modules/usage/adapter/out"
	usagedto "mindflow/internal/modules/usage/dto"
	usagein "mindflow/internal/modules/usage/port/in"
	usageservice "mindflow/internal/modules/usage/service"
	usageusecase "mindflow/internal/modules/usage/usecase"
	wellnessinadapter "mindflow/internal/modules/wellness/adapter/in"
	wellnessoutadapter "mindflow/internal/modules/wellness/adapter/out"
	wellnessin "mindflow/internal/modules/wellness/port/in"
	wellnessservice "mindflow/internal/modules/wellness/service"
	wellnessusecase "mindflow/internal/modules/wellness/usecase"
	"mindflow/internal/platform/backend"
	"mindflow/internal/platform/clock"
	"mindflow/internal/platform/config"
	"mindflow/internal/platform/id"
	"mindflow/internal/platform/identity"
	"mindflow/internal/platform/kvstore"
	"mindflow/internal/platform/scheduler"
	uiapp "mindflow/internal/ui/app"
)

type App struct {
	UsageCLI      usageinadapter.CLIHandler
	FocusCLI      focusinadapter.CLIHandler
	WellnessCLI   wellnessinadapter.CLIHandler
	StreakCLI     streakinadapter.CLIHandler
	NoteCLI       noteinadapter.CLIHandler
	TransitionCLI dtinadapter.CLIHandler
	Identity      *identity.Resolver

	cfg        config.Config
	log        *slog.Logger
	db         *kvstore.SQLiteStore
	kv         kvstore.Store
	clock      clock.Clock
	scheduler  *scheduler.Scheduler
	mirror     *scheduler.KVMirror
	pid        scheduler.PIDFile
	usage      usagein.Usecase
	focus      focusin.Usecase
	wellness   wellnessin.Usecase
	streak     streakin.Usecase
	note       notein.Usecase
	transition dtin.Usecase
}

func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	loc, err := cfg.Schedule.Location()
	if err != nil {
		return nil, fmt.Errorf("load timezone: %w", err)
	}
	clk := clock.SystemClock{Location: loc}
	ids := id.UUID{}

	db, err := kvstore.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	kv := kvstore.WithPrefix(db, cfg.Store.KeyPrefix)
	users := identity.NewResolver(kv, cfg.User.ID, logger)
	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, ids, logger)

	mirror := scheduler.NewKVMirror(kv)
	sched := scheduler.New(clk, logger, scheduler.WithMirror(mirror))

	usageStore := usageoutadapter.NewKVUsageStore(kv, logger)
	usageUC := usageusecase.NewInteractor(usageservice.NewUsageService(clk, usageStore, usageStore, logger), logger)

	ledger := focusoutadapter.NewKVLedger(kv)
	focusUC := focususecase.NewInteractor(
		focusservice.NewFocusService(clk, ids, ledger, logger),
		focusoutadapter.NewFileActiveFocusStore(cfg.DataDir),
		ledger,
	)

	wellnessUC := wellnessusecase.NewInteractor(wellnessservice.NewWellnessService(
		wellnessoutadapter.NewFocusBridge(focusUC),
		wellnessoutadapter.NewUsageBridge(usageUC),
		logger,
	))

	streakUC := streakusecase.NewInteractor(streakservice.NewStreakService(
		clk,
		streakoutadapter.NewBackendAdapter(client, logger),
		streakoutadapter.NewKVStateStore(kv),
		users,
		logger,
	))

	noteUC := noteusecase.NewInteractor(noteservice.NewNoteService(
		clk,
		ids,
		noteoutadapter.NewVaultNoteStore(cfg.DataDir, logger),
		noteoutadapter.NewKVFlagStore(kv),
		logger,
	))

	usageBridge := dtoutadapter.NewUsageBridge(usageUC)
	transitionUC := dtusecase.NewInteractor(dtservice.NewCoordinator(clk, dtservice.Ports{
		Dates:         dtoutadapter.NewKVDateStore(kv, logger),
		Notifications: usageBridge,
		ScreenTime:    usageBridge,
		Refresher:     dtoutadapter.NewBackendRefresher(client, users, logger),
		Notes:         dtoutadapter.NewNoteBridge(noteUC),
		Scheduler:     dtoutadapter.NewSchedulerAdapter(sched),
	}, dtservice.Options{
		WakeInterval:   cfg.Schedule.WakeInterval,
		MidnightHour:   cfg.Schedule.MidnightHour,
		MidnightMinute: cfg.Schedule.MidnightMin,
		RefreshTimeout: cfg.Backend.Timeout * 2,
	}, logger))

	return &App{
		UsageCLI:      usageinadapter.NewCLIHandler(usageUC),
		FocusCLI:      focusinadapter.NewCLIHandler(focusUC),
		WellnessCLI:   wellnessinadapter.NewCLIHandler(wellnessUC),
		StreakCLI:     streakinadapter.NewCLIHandler(streakUC),
		NoteCLI:       noteinadapter.NewCLIHandler(noteUC),
		TransitionCLI: dtinadapter.NewCLIHandler(transitionUC),
		Identity:      users,

		cfg:        cfg,
		log:        logger,
		db:         db,
		kv:         kv,
		clock:      clk,
		scheduler:  sched,
		mirror:     mirror,
		pid:        scheduler.NewPIDFile(cfg.DataDir),
		usage:      usageUC,
		focus:      focusUC,
		wellness:   wellnessUC,
		streak:     streakUC,
		note:       noteUC,
		transition: transitionUC,
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

// RunTUI opens the dashboard with terminal focus reporting so focus changes
// reach the screen-time tracker.
func RunTUI(ctx context.Context, app *App) error {
	model := uiapp.NewModel(uiapp.Ports{
		Wellness:   app.wellness,
		Streak:     app.streak,
		Usage:      app.usage,
		Transition: app.transition,
		Focus:      app.focus,
		Note:       app.note,
	}, app.cfg.Schedule.TUITick)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus(), tea.WithContext(ctx))
	_, err := program.Run()
	return finishTUI(ctx, err, app.usage, app.transition, app.log)
}

type tracker interface {
	Background(ctx context.Context) (usagedto.ScreenTimeOutput, error)
}

type waiter interface {
	Wait()
}

// finishTUI stops screen-time tracking when a signal killed the program and
// joins in-flight day refreshes before the store is closed.
func finishTUI(ctx context.Context, runErr error, usage tracker, transition waiter, logger *slog.Logger) error {
	defer transition.Wait()
	if errors.Is(runErr, tea.ErrProgramKilled) && ctx.Err() != nil {
		if _, err := usage.Background(context.WithoutCancel(ctx)); err != nil {
			logger.WarnContext(ctx, "stop screen-time tracking", slog.Any("error", err))
		}
		return nil
	}
	return runErr
}

// RunDaemon installs the day-transition schedule and drives it until ctx is
// cancelled, then removes it again. With serveBackend the reference backend
// runs in the same process.
func RunDaemon(ctx context.Context, app *App, serveBackend bool) error {
	if pid, ok, err := app.pid.Read(); err == nil && ok && pid != os.Getpid() && processAlive(pid) {
		return fmt.Errorf("daemon already running with pid %d", pid)
	}
	if err := app.pid.Write(os.Getpid()); err != nil {
		return err
	}
	defer func() {
		if err := app.pid.Clear(); err != nil {
			app.log.Warn("clear daemon pid", slog.Any("error", err))
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	if serveBackend {
		g.Go(func() error { return RunDevBackend(gctx, app.cfg, app.log, app.clock) })
	}
	g.Go(func() error { return app.scheduler.Run(gctx) })
	g.Go(func() error {
		out, err := app.TransitionCLI.Initialize(gctx)
		if err != nil {
			app.log.ErrorContext(gctx, "initial date check", slog.Any("error", err))
			return nil
		}
		app.log.InfoContext(gctx, "daemon started",
			slog.Bool("transitioned", out.Transitioned),
			slog.String("today", out.Today),
			slog.Int("pid", os.Getpid()),
		)
		return nil
	})

	err := g.Wait()
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	app.transition.Cleanup(cleanupCtx)
	app.transition.Wait()
	return err
}

// RunDevBackend serves the reference backend until ctx is cancelled.
func RunDevBackend(ctx context.Context, cfg config.Config, logger *slog.Logger, clk clock.Clock) error {
	router := devbackend.NewRouter(devbackend.NewStore(clk), logger)
	return devbackend.Serve(ctx, cfg.DevBackend.Addr, router, cfg.DevBackend.ShutdownTimeout, logger)
}
