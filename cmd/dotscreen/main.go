package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/dotscreen/internal/anim"
	"github.com/san-kum/dotscreen/internal/config"
	"github.com/san-kum/dotscreen/internal/grid"
	"github.com/san-kum/dotscreen/internal/imaging"
	"github.com/san-kum/dotscreen/internal/scene"
	"github.com/san-kum/dotscreen/internal/scheme"
	"github.com/san-kum/dotscreen/internal/storage"
	"github.com/san-kum/dotscreen/internal/term"
)

var (
	configFile string
	presetName string
	fps        int
	width      int
	height     int
	schemeName string
	luminosity float64
	noDither   bool
	inverted   bool
	noColor    bool
	benchSecs  int
	benchSave  bool
	dataDir    string
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dotscreen",
		Short: "braille dot-matrix graphics and animation for the terminal",
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&presetName, "preset", "", "named preset (see `scenes`)")
	rootCmd.PersistentFlags().IntVar(&fps, "fps", 0, "target frame rate")
	rootCmd.PersistentFlags().IntVar(&width, "width", 0, "grid width in cells (0 = terminal width)")
	rootCmd.PersistentFlags().IntVar(&height, "height", 0, "grid height in cells (0 = terminal height)")
	rootCmd.PersistentFlags().StringVar(&schemeName, "scheme", "", "color scheme")

	animateCmd := &cobra.Command{
		Use:   "animate [scene]",
		Short: "run an animated scene",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAnimate,
	}

	imageCmd := &cobra.Command{
		Use:   "image [file]",
		Short: "render an image as braille dots",
		Args:  cobra.ExactArgs(1),
		RunE:  runImage,
	}
	imageCmd.Flags().Float64Var(&luminosity, "luminosity", config.DefaultLuminosity, "brightness threshold (0-1)")
	imageCmd.Flags().BoolVar(&noDither, "no-dither", false, "disable dithering")
	imageCmd.Flags().BoolVar(&inverted, "invert", false, "invert light and dark")
	imageCmd.Flags().BoolVar(&noColor, "no-color", false, "disable per-cell color")

	gifCmd := &cobra.Command{
		Use:   "gif [file]",
		Short: "play an animated gif",
		Args:  cobra.ExactArgs(1),
		RunE:  runGIF,
	}
	gifCmd.Flags().Float64Var(&luminosity, "luminosity", config.DefaultLuminosity, "brightness threshold (0-1)")
	gifCmd.Flags().BoolVar(&noDither, "no-dither", false, "disable dithering")
	gifCmd.Flags().BoolVar(&inverted, "invert", false, "invert light and dark")
	gifCmd.Flags().BoolVar(&noColor, "no-color", false, "disable per-cell color")

	scenesCmd := &cobra.Command{
		Use:   "scenes",
		Short: "list scenes and color schemes",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(titleStyle.Render("scenes"))
			for _, name := range scene.NewRegistry().Names() {
				fmt.Printf("  %s\n", name)
			}
			fmt.Println(titleStyle.Render("schemes"))
			for _, name := range scheme.Names() {
				fmt.Printf("  %s\n", name)
			}
			fmt.Println(titleStyle.Render("presets"))
			for _, name := range config.ListPresets() {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench [scene]",
		Short: "measure render throughput off-screen",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&benchSecs, "seconds", 3, "benchmark duration")
	benchCmd.Flags().BoolVar(&benchSave, "save", false, "save run results")

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".dotscreen", "data directory")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved benchmark runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved benchmark run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	rootCmd.AddCommand(animateCmd, imageCmd, gifCmd, scenesCmd, benchCmd, runsCmd, plotCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadSettings resolves settings in increasing precedence: defaults, then
// preset, then config file, then individual flags.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if presetName != "" {
		preset := config.GetPreset(presetName)
		if preset == nil {
			return nil, fmt.Errorf("unknown preset: %s", presetName)
		}
		cfg = preset
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if fps > 0 {
		cfg.FPS = fps
	}
	if width > 0 {
		cfg.Width = width
	}
	if height > 0 {
		cfg.Height = height
	}
	if schemeName != "" {
		cfg.Scheme = schemeName
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func resolveSize(cfg *config.Config) (int, int) {
	w, h := cfg.Width, cfg.Height
	if w == 0 || h == 0 {
		tw, th := term.Size()
		if w == 0 {
			w = tw
		}
		if h == 0 {
			h = th
		}
	}
	return w, h
}

func runAnimate(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	registry := scene.NewRegistry()
	name := ""
	if len(args) > 0 {
		name = args[0]
	} else {
		name, err = pickScene(registry.Names())
		if err != nil {
			return err
		}
		if name == "" {
			return nil // picker aborted
		}
	}

	s, err := registry.Get(name, scheme.ByName(cfg.Scheme))
	if err != nil {
		return err
	}

	return runLoop(cfg, s, 0)
}

func runGIF(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	g, err := imaging.DecodeGIFFile(args[0])
	if err != nil {
		return err
	}

	w, h := resolveSize(cfg)
	producer, err := newGIFProducer(g, w, h, imaging.Options{
		Luminosity: luminosity,
		Dither:     !noDither,
		Inverted:   inverted,
		Colorize:   !noColor,
	})
	if err != nil {
		return err
	}

	return runLoop(cfg, producer, 0)
}

// runLoop sets up the terminal, runs the animation until interrupted, and
// restores the terminal state.
func runLoop(cfg *config.Config, producer anim.Producer, maxFrames int) error {
	w, h := resolveSize(cfg)

	out := term.NewANSI(os.Stdout)
	out.EnterAltScreen()
	out.HideCursor()
	out.ClearScreen()
	out.Flush()
	defer func() {
		out.ShowCursor()
		out.LeaveAltScreen()
		out.Flush()
	}()

	loop, err := anim.NewLoop(w, h, cfg.FPS, out)
	if err != nil {
		return err
	}
	loop.MaxFrames = maxFrames

	watcher := term.NewResizeWatcher()
	watcher.Start()
	defer watcher.Stop()
	loop.WatchResize(watcher.Events())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := loop.Run(ctx, producer); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

func runImage(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	img, err := imaging.DecodeFile(args[0])
	if err != nil {
		return err
	}

	w, h := resolveSize(cfg)
	dotW, dotH := imaging.FitRect(img, w*grid.DotsPerCellX, h*grid.DotsPerCellY)
	cellW := (dotW + grid.DotsPerCellX - 1) / grid.DotsPerCellX
	cellH := (dotH + grid.DotsPerCellY - 1) / grid.DotsPerCellY

	g, err := imaging.ToGrid(img, cellW, cellH, imaging.Options{
		Luminosity: luminosity,
		Dither:     !noDither,
		Inverted:   inverted,
		Colorize:   !noColor,
	})
	if err != nil {
		return err
	}

	out := term.NewANSI(os.Stdout)
	for cy := 0; cy < g.Height(); cy++ {
		for cx := 0; cx < g.Width(); cx++ {
			cell, err := g.Cell(cx, cy)
			if err != nil {
				return err
			}
			if cell.HasColor {
				out.SetColor(cell.Color)
			}
			out.WriteRune(cell.Rune())
			if cell.HasColor {
				out.ResetColor()
			}
		}
		out.WriteString("\n")
	}
	return out.Flush()
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	name := "wave"
	if len(args) > 0 {
		name = args[0]
	}
	s, err := scene.NewRegistry().Get(name, scheme.ByName(cfg.Scheme))
	if err != nil {
		return err
	}

	w, h := resolveSize(cfg)
	loop, err := anim.NewLoop(w, h, cfg.FPS, discardOutput{})
	if err != nil {
		return err
	}
	loop.MaxFrames = cfg.FPS * benchSecs
	loop.CollectStats = true

	fmt.Printf("benchmarking %s at %dx%d cells, %d fps target...\n", name, w, h, cfg.FPS)
	stats, err := loop.Run(context.Background(), s)
	if err != nil {
		return err
	}

	times := make([]float64, len(stats.FrameTimes))
	var totalRender time.Duration
	for i, d := range stats.FrameTimes {
		times[i] = float64(d.Microseconds()) / 1000.0
		totalRender += d
	}
	changed := make([]float64, len(stats.ChangedCells))
	var totalChanged int
	for i, c := range stats.ChangedCells {
		changed[i] = float64(c)
		totalChanged += c
	}

	fmt.Println()
	fmt.Println(asciigraph.Plot(times,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("render time per frame (ms)")))
	fmt.Println()
	fmt.Println(asciigraph.Plot(changed,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("changed cells per frame")))
	fmt.Println()

	totalCells := w * h
	row := func(label, value string) {
		fmt.Println(labelStyle.Render(label) + valueStyle.Render(value))
	}
	fmt.Println(titleStyle.Render("results"))
	row("frames", fmt.Sprintf("%d", stats.Frames))
	row("actual rate", fmt.Sprintf("%.2f fps", stats.ActualRate))
	row("overruns", fmt.Sprintf("%d", stats.Overruns))
	if stats.Frames > 0 {
		row("avg render", fmt.Sprintf("%v", totalRender/time.Duration(stats.Frames)))
		row("avg changed", fmt.Sprintf("%.1f / %d cells (%.1f%%)",
			float64(totalChanged)/float64(stats.Frames), totalCells,
			float64(totalChanged)/float64(stats.Frames)/float64(totalCells)*100))
	}

	if benchSave {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(name, w, h, cfg.FPS, stats)
		if err != nil {
			return err
		}
		fmt.Println()
		row("run id", runID)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no saved runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENE\tSIZE\tTARGET\tACTUAL\tFRAMES\tOVERRUNS")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d\t%.2f\t%d\t%d\n",
			r.ID, r.Scene, r.Width, r.Height, r.TargetFPS, r.ActualRate, r.Frames, r.Overruns)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	renderMs, changed, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if len(renderMs) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scene: %s (%dx%d at %d fps target)\n\n", meta.Scene, meta.Width, meta.Height, meta.TargetFPS)

	fmt.Println(asciigraph.Plot(renderMs,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("render time per frame (ms)")))
	fmt.Println()

	changedF := make([]float64, len(changed))
	for i, c := range changed {
		changedF[i] = float64(c)
	}
	fmt.Println(asciigraph.Plot(changedF,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("changed cells per frame")))
	return nil
}

// discardOutput satisfies term.Output for off-screen benchmarking.
type discardOutput struct{}

func (discardOutput) MoveTo(row, col int) error   { return nil }
func (discardOutput) SetColor(c grid.Color) error { return nil }
func (discardOutput) ResetColor() error           { return nil }
func (discardOutput) WriteRune(r rune) error      { return nil }
func (discardOutput) WriteString(s string) error  { return nil }
func (discardOutput) Flush() error                { return nil }
