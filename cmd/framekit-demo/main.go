// framekit-demo showcases the three container frames. Each -t flag selects
// a demo by component name; repeat the flag to run several in sequence.
//
//	framekit-demo -t NestedFrame -t ScrollFrame -t AspectRatioFrame
//
// Keys: arrows/hjkl scroll (ScrollFrame demo), q quits the current demo.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"framekit"
)

// targetList collects repeated -t flags in order.
type targetList []string

func (t *targetList) String() string {
	return strings.Join(*t, ",")
}

func (t *targetList) Set(v string) error {
	*t = append(*t, v)
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("framekit-demo: ")

	var targets targetList
	configPath := flag.String("config", "", "path to TOML settings file")
	backend := flag.String("backend", "", `render backend: "app" or "tea" (overrides config)`)
	flag.Var(&targets, "t", "component demo to run (repeatable): NestedFrame, ScrollFrame, AspectRatioFrame")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *backend != "" {
		cfg.Backend = *backend
	}
	if cfg.Backend != "app" && cfg.Backend != "tea" {
		log.Fatalf("unknown backend %q", cfg.Backend)
	}

	if len(targets) == 0 {
		targets = targetList{"NestedFrame", "ScrollFrame", "AspectRatioFrame"}
	}

	// validate every name before running anything
	for _, name := range targets {
		if _, ok := demos[name]; !ok {
			fmt.Fprintf(os.Stderr, "framekit-demo: unknown component %q (want NestedFrame, ScrollFrame, or AspectRatioFrame)\n", name)
			os.Exit(2)
		}
	}

	for _, name := range targets {
		if err := demos[name](cfg); err != nil {
			log.Fatalf("%s: %v", name, err)
		}
	}
}

var demos = map[string]func(demoConfig) error{
	"NestedFrame":      runNestedDemo,
	"ScrollFrame":      runScrollDemo,
	"AspectRatioFrame": runAspectDemo,
}

// runNestedDemo builds a tree of bordered frames through the parent stack,
// one scope per nesting level.
func runNestedDemo(cfg demoConfig) error {
	root := framekit.NewFrame(nil).Gap(1)
	framekit.NewLabel(root, "NestedFrame demo - q to quit").Color(framekit.BrightWhite)

	stack := framekit.NewParentStack(root)
	depth := cfg.Nested.Depth
	if depth < 1 {
		depth = 1
	}
	var build func(level int)
	build = func(level int) {
		stack.Nest(func(nf *framekit.NestedFrame) {
			nf.Border(framekit.BorderSingle)
			framekit.NewLabel(nf, fmt.Sprintf("level %d of %d", level, depth))
			if level < depth {
				build(level + 1)
			}
		})
	}
	build(1)

	// a sibling scope after the deep chain, to show the stack unwinding
	stack.Nest(func(nf *framekit.NestedFrame) {
		nf.Border(framekit.BorderSingle)
		framekit.NewLabel(nf, "sibling scope at depth 1")
	})

	if stack.Depth() != 0 {
		return fmt.Errorf("parent stack left unbalanced: depth %d", stack.Depth())
	}
	return runBackend(cfg, root, nil, "NestedFrame")
}

// runScrollDemo fills a scroll frame with more lines than fit and wires the
// arrow keys to scroll events.
func runScrollDemo(cfg demoConfig) error {
	policy, err := cfg.Scroll.policy()
	if err != nil {
		return err
	}

	sf := framekit.NewScrollFrame(nil).
		Policy(framekit.Vertical, policy).
		Policy(framekit.Horizontal, policy)

	lines := cfg.Scroll.ContentHeight
	if lines < 1 {
		lines = 60
	}
	framekit.NewLabel(sf.Content(), "ScrollFrame demo - arrows/hjkl scroll, q quits").Color(framekit.BrightWhite)
	for i := 1; i <= lines; i++ {
		framekit.NewLabel(sf.Content(), fmt.Sprintf("content line %3d", i))
	}
	if cfg.Scroll.ContentWidth > 0 || cfg.Scroll.ContentHeight > 0 {
		w, h := sf.Content().ContentSize()
		if cfg.Scroll.ContentWidth > w {
			w = cfg.Scroll.ContentWidth
		}
		if cfg.Scroll.ContentHeight > h {
			h = cfg.Scroll.ContentHeight
		}
		sf.ContentSize(w, h)
	}

	return runBackend(cfg, sf, sf, "ScrollFrame")
}

// runAspectDemo keeps a bordered box at the configured ratio while the
// terminal resizes around it.
func runAspectDemo(cfg demoConfig) error {
	anchor, err := cfg.Aspect.anchor()
	if err != nil {
		return err
	}

	af, err := framekit.NewAspectRatioFrame(nil, cfg.Aspect.RatioW, cfg.Aspect.RatioH)
	if err != nil {
		return err
	}
	if err := af.SetAnchor(anchor); err != nil {
		return err
	}

	af.Content().Border(framekit.BorderSingle)
	framekit.NewLabel(af.Content(),
		fmt.Sprintf("AspectRatioFrame %g:%g anchored %s - resize the terminal, q quits",
			cfg.Aspect.RatioW, cfg.Aspect.RatioH, anchor))

	return runBackend(cfg, af, nil, "AspectRatioFrame")
}

// runBackend runs the component tree under the configured backend.
func runBackend(cfg demoConfig, root framekit.Component, scroll *framekit.ScrollFrame, title string) error {
	if cfg.Backend == "tea" {
		model := framekit.NewTeaModel(root).
			WithStatus(title + " | q quit").
			WithWheelStep(cfg.Scroll.WheelStep)
		if scroll != nil {
			model = model.WithScrollTarget(scroll)
		}
		_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
		return err
	}

	app, err := framekit.NewApp(root)
	if err != nil {
		return err
	}
	if scroll != nil {
		step := cfg.Scroll.WheelStep
		if step < 1 {
			step = 1
		}
		bind := func(name string, dx, dy int) {
			app.Handle(name, func(framekit.Key) { scroll.OnScroll(dx, dy) })
		}
		bind("up", 0, -1)
		bind("k", 0, -1)
		bind("down", 0, 1)
		bind("j", 0, 1)
		bind("left", -step, 0)
		bind("h", -step, 0)
		bind("right", step, 0)
		bind("l", step, 0)
	}
	return app.Run()
}
