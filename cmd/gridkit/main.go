package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridkit/audio"
	"github.com/lixenwraith/gridkit/config"
	"github.com/lixenwraith/gridkit/export"
	"github.com/lixenwraith/gridkit/host"
	"github.com/lixenwraith/gridkit/space"
)

var (
	configFlag     = flag.String("config", config.DefaultPath(), "Path to the TOML config file")
	csvFlag        = flag.String("csv", "", "CSV file to show instead of the sample table")
	debugFlag      = flag.Bool("debug", false, "Write debug logs to the log directory")
	exportFlag     = flag.String("export", "", "Render the table to this PNG file and exit")
	initConfigFlag = flag.Bool("init-config", false, "Write the default config file and exit")
)

func main() {
	var screen tcell.Screen

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mGRIDKIT CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if *initConfigFlag {
		if err := config.Write(*configFlag, config.Default()); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *configFlag)
		return
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if cfg.LogDir != "" {
		logDir = cfg.LogDir
	}
	if logFile := setupLogging(cfg.Debug || *debugFlag); logFile != nil {
		defer logFile.Close()
	}

	model, err := loadModel(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load table: %v\n", err)
		os.Exit(1)
	}
	columns := space.NewLines(model.Columns(), cfg.Grid.ColumnWidth)
	rows := space.NewLines(model.Rows(), cfg.Grid.RowHeight)

	if *exportFlag != "" {
		if err := export.SavePNG(*exportFlag, columns, rows, model, export.DefaultOptions()); err != nil {
			fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	theme, err := cfg.Theme.Apply(host.DefaultTheme())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid theme: %v\n", err)
		os.Exit(1)
	}

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	// Audio is optional, the grid works without a sound device
	player := audio.NewPlayer(cfg.AudioConfig())
	if err := player.Initialize(); err != nil {
		log.Printf("audio: initialization failed, continuing without audio: %v", err)
	}
	defer player.Cleanup()

	grid := host.NewGrid(screen, columns, rows, model, theme)
	grid.SetCopier(clipboard.WriteAll)
	if clipboard.Unsupported {
		grid.SetCopier(nil)
	}
	grid.SetMessage("drag header edges to resize columns, first column edges for rows, q quits")

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	newApp(screen, grid, player).run(events)
}

func loadModel(cfg config.Config) (*host.Table, error) {
	if *csvFlag == "" {
		return host.SampleTable(cfg.Grid.Rows, cfg.Grid.Columns), nil
	}
	f, err := os.Open(*csvFlag)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return host.LoadCSV(f)
}
