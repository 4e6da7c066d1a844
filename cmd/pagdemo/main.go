// Command pagdemo builds a small composition, verifies it, prints the frame
// ranges whose output can be cached, counts the frames a frame cache would
// render and renders into a hardware buffer.
package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"log/slog"
	"os"

	pag "github.com/mengzhisuoliu/libpag"
	"github.com/mengzhisuoliu/libpag/cache"
	"github.com/mengzhisuoliu/libpag/drawable"
	_ "github.com/mengzhisuoliu/libpag/gpu" // enable -api vulkan
)

func main() {
	cfg := defaultConfig()
	flag.IntVar(&cfg.Width, "width", cfg.Width, "composition width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "composition height")
	flag.Int64Var(&cfg.Duration, "duration", cfg.Duration, "composition duration in frames")
	flag.StringVar(&cfg.API, "api", cfg.API, "GPU API: noop or vulkan")
	flag.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log debug output")
	configPath := flag.String("config", "", "TOML file with settings; flags given explicitly win")
	flag.Parse()

	if *configPath != "" {
		fileCfg := defaultConfig()
		if err := loadConfig(*configPath, &fileCfg); err != nil {
			log.Fatalf("config: %v", err)
		}
		set := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		cfg = mergeConfig(fileCfg, cfg, set)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	pag.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	comp := buildComposition(cfg.Width, cfg.Height, pag.Frame(cfg.Duration))
	if !comp.Verify() {
		log.Fatal("composition failed verification")
	}

	static := comp.StaticTimeRanges()
	log.Printf("%d static ranges over %d frames", len(static), comp.Duration)
	for _, r := range static {
		log.Printf("  %v (%d frames)", r, r.Duration())
	}

	frames := cache.NewCompositionCache[pag.Frame](comp, 0)
	rendered := 0
	for f := pag.Frame(0); f < comp.Duration; f++ {
		_, err := frames.GetOrRender(f, func(content pag.Frame) (pag.Frame, error) {
			rendered++
			return content, nil
		})
		if err != nil {
			log.Fatalf("frame %d: %v", f, err)
		}
	}
	log.Printf("%d of %d frames need rendering (hit rate %.2f)", rendered, comp.Duration, frames.Stats().HitRate)

	if err := render(comp, drawable.API(cfg.API)); err != nil {
		log.Fatalf("render: %v", err)
	}
}

// buildComposition returns a camera, a blurred solid fading in at frame 30
// and a null layer sliding across the second half.
func buildComposition(w, h int, duration pag.Frame) *pag.Composition {
	comp := pag.NewComposition(w, h, duration, 30)

	camera := &pag.CameraLayer{
		LayerCore: pag.LayerCore{ID: 1, Name: "camera", Duration: duration, Transform: pag.DefaultTransform2D()},
		Option:    pag.DefaultCameraOption(),
	}
	comp.AddLayer(camera)

	solid := &pag.SolidLayer{
		LayerCore: pag.LayerCore{ID: 2, Name: "background", StartTime: 30, Duration: duration - 30,
			Transform: pag.DefaultTransform2D()},
		Color:  color.RGBA{R: 0x20, G: 0x60, B: 0xc0, A: 0xff},
		Width:  w,
		Height: h,
	}
	solid.Transform.Opacity = pag.NewAnimated(pag.LerpOpacity,
		pag.Keyframe[pag.Opacity]{Start: 0, End: 20, From: 0, To: pag.Opaque, Interpolation: pag.InterpolationLinear})
	solid.Effects = []pag.Effect{
		pag.NewRadialBlurEffect(
			pag.NewAnimated(pag.LerpFloat,
				pag.Keyframe[float64]{Start: 0, End: 40, From: 0, To: 0, Interpolation: pag.InterpolationHold},
				pag.Keyframe[float64]{Start: 40, End: 60, From: 0, To: 25, Interpolation: pag.InterpolationLinear}),
			pag.NewStatic(pag.Pt(float64(w)/2, float64(h)/2))),
	}
	comp.AddLayer(solid)

	null := &pag.NullLayer{LayerCore: pag.LayerCore{ID: 3, Name: "anchor", Duration: duration,
		Transform: pag.DefaultTransform2D()}}
	null.Transform.Position = pag.NewAnimated(pag.LerpPoint,
		pag.Keyframe[pag.Point]{Start: duration / 2, End: duration, From: pag.Pt(0, 0),
			To: pag.Pt(float64(w), 0), Interpolation: pag.InterpolationLinear})
	comp.AddLayer(null)

	return comp
}

// render acquires a surface on a buffer-backed drawable filled with the
// solid layer's color.
func render(comp *pag.Composition, api drawable.API) error {
	buf := drawable.NewImageBuffer(comp.Width, comp.Height, api)
	if solid, ok := comp.LayerByID(2).(*pag.SolidLayer); ok {
		swatch := image.NewRGBA(image.Rect(0, 0, 1, 1))
		swatch.SetRGBA(0, 0, solid.Color)
		buf.CopyFrom(swatch)
	}

	d, err := drawable.MakeFrom(buf, nil)
	if err != nil {
		return err
	}
	defer d.Release()

	dev, err := d.Device()
	if err != nil {
		return err
	}
	ctx := dev.LockContext()
	if ctx == nil {
		return drawable.ErrReleased
	}
	defer dev.UnlockContext()

	surface, err := d.Surface(ctx)
	if err != nil {
		return err
	}
	if err := d.Present(ctx); err != nil {
		return err
	}
	log.Printf("rendered into %dx%d surface on %s (%s), state %v",
		surface.Width(), surface.Height(), dev.API(), dev.AdapterName(), d.State())
	return nil
}
