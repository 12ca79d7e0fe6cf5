package main

import (
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var wg sync.WaitGroup

// oledtiles --config={config file} run|snapshot|glyphs

func init() {
	// -v is verbose
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newPanel(settings configSettings, comms commChannels) (panel, error) {
	switch name := settings.GetString(sSink); name {
	case sinkI2C:
		return &sh1107Panel{}, nil
	case sinkSPI:
		return &sh1107Panel{spi: true}, nil
	case sinkTerm:
		return &termPanel{comms: comms}, nil
	case sinkSerial:
		return &serialPanel{}, nil
	case sinkLog:
		return &logPanel{}, nil
	default:
		return nil, errors.Errorf("unknown sink '%s'", name)
	}
}

func newSource(name string) (valueSource, error) {
	switch name {
	case srcSweep:
		return sweepSource{}, nil
	case srcSysinfo:
		return sysinfoSource{}, nil
	case srcHTTP:
		return httpSource{}, nil
	default:
		return nil, errors.Errorf("unknown source '%s'", name)
	}
}

// loadSettings reads the config file and applies command line overrides
func loadSettings(c *cli.Context) (configSettings, error) {
	settings, err := initSettings(c.String("config"))
	if err != nil {
		return settings, err
	}
	if c.Bool("verbose") {
		settings.Set(sDebug, true)
	}
	for _, key := range []string{sSink, sSource, sTitle, sLabel} {
		if c.IsSet(key) {
			settings.Set(key, c.String(key))
		}
	}
	return settings, nil
}

func runCommand(c *cli.Context) error {
	settings, err := loadSettings(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	// the terminal panel owns the screen
	logs, err := setupLogging(settings, settings.GetString(sSink) == sinkTerm && settings.GetString(sLogFile) == "")
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer logs.Close()

	if settings.GetBool(sDebug) {
		log.Println(">>> Settings <<<")
		settings.Dump()
	}

	rt := initRuntime(clockwork.NewRealClock(), nil, settings)
	comms := rt.comms
	rt.panel, err = newPanel(settings, comms)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	src, err := newSource(settings.GetString(sSource))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case s := <-sig:
			log.Printf("got %v, exiting", s)
			comms.stop()
		case <-comms.quit:
		}
	}()

	// wait on our two workers: the panel and its value source
	wg.Add(2)
	go func() {
		defer wg.Done()
		runPanel(rt)
	}()
	go func() {
		defer wg.Done()
		src.run(rt)
	}()
	wg.Wait()
	return nil
}

func snapshotCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}
	settings, err := loadSettings(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	v := panelValues{
		Dial:  c.Int("dial"),
		VU:    c.Int("vu"),
		Level: c.Int("level"),
	}
	if err := saveSnapshot(c.Args().First(), settings, v, c.Int("scale")); err != nil {
		return cli.NewExitError(err, 1)
	}
	return nil
}

func glyphsCommand(c *cli.Context) error {
	settings, err := loadSettings(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	lp := &logPanel{}
	lp.OpenPanel(settings)
	lp.DebugDump(true)
	if err := dumpGlyphs(newRenderer(lp, settings)); err != nil {
		return cli.NewExitError(err, 1)
	}
	log.Printf("%d tiles", len(lp.audit))
	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "oledtiles"
	app.Usage = "Tile graphics on a 128x128 SH1107 OLED"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			EnvVars: []string{"OLEDTILES_CONFIG"},
			Usage:   "path to JSON config file",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "dump settings and every tile drawn",
		},
	}

	// overrides for the config file
	overrides := []cli.Flag{
		&cli.StringFlag{Name: sTitle, Usage: "title word"},
		&cli.StringFlag{Name: sLabel, Usage: "large label word"},
	}

	app.Commands = []*cli.Command{
		{
			Name:  "run",
			Usage: "Drive the panel from a value source",
			Flags: append([]cli.Flag{
				&cli.StringFlag{Name: sSink, Usage: "sh1107-i2c, sh1107-spi, term, serial or log"},
				&cli.StringFlag{Name: sSource, Usage: "sweep, sysinfo or http"},
			}, overrides...),
			Action: runCommand,
		},
		{
			Name:      "snapshot",
			Usage:     "Render one panel to a PNG file",
			ArgsUsage: "FILE",
			Flags: append([]cli.Flag{
				&cli.IntFlag{Name: "dial", Usage: "dial value, 0-1024"},
				&cli.IntFlag{Name: "vu", Usage: "VU value, 0-40"},
				&cli.IntFlag{Name: "level", Usage: "percentage value, 0-1024"},
				&cli.IntFlag{Name: "scale", Value: 4, Usage: "pixels per panel pixel"},
			}, overrides...),
			Action: snapshotCommand,
		},
		{
			Name:   "glyphs",
			Usage:  "Draw every glyph to the log",
			Action: glyphsCommand,
		},
	}

	// OLEDTILES_CONFIG may come from a .env in the working directory
	if err := godotenv.Load(); err == nil {
		log.Println("loaded .env")
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
