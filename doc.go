// Package aureole renders a small decorative 3D scene on [Ebitengine]:
// three thin gold rings spinning around a normal-mapped icosahedron above a
// cylindrical floor, lit by three point lights, with a debug panel for the
// lights and camera.
//
// # Quick start
//
// [NewApp] builds the scene from a [RunConfig] and [Run] opens a window and
// drives it once per display refresh:
//
//	cfg := aureole.DefaultRunConfig()
//	app, err := aureole.NewApp(cfg, os.DirFS("."))
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := aureole.Run(ctx, app, cfg); err != nil {
//		log.Fatal(err)
//	}
//
// # Application state
//
// All state lives in an [App]: the [Scene], the meshes the frame loop
// animates, the [PerspectiveCamera] with its [OrbitControls], the
// [Renderer], the [Panel] and the [InputState]. [UpdateFrame] takes the App
// explicitly and performs one tick:
//
//   - ring 1 turns at 0.5 rad/s about X and Y, ring 3 at 0.5 about X and
//     -1.0 about Y, ring 2 stays put
//   - the icosahedron spins with time and leans toward the pointer
//   - once the page has been scrolled, the icosahedron height follows the
//     scroll offset
//   - the orbit controls apply a damped share of any pending drag
//
// # Loop
//
// [Loop] wraps UpdateFrame in a run/stop handle. Tests run a bounded number
// of ticks against a [ManualClock]:
//
//	app := aureole.BuildScene(aureole.BuildOptions{Clock: clk})
//	loop := aureole.NewLoop(app)
//	clk.Set(2)
//	loop.RunTicks(1)
//
// Stop, or a context passed to [Loop.Bind], ends the loop; the Ebitengine
// game then returns [ebiten.Termination].
//
// # Rendering
//
// The [Renderer] transforms, culls, lights and depth-sorts triangles on the
// CPU and submits them with [ebiten.Image.DrawTriangles] through
// [WhitePixel]. Lighting is per vertex: Lambert diffuse plus a roughness
// driven Blinn-Phong specular, with an optional tangent-space [NormalMap]
// and bounding-sphere shadows. Set Renderer.Debug to log frame timings.
//
// # Debug panel
//
// Panel controls bind typed getters and setters:
//
//	f := panel.AddFolder("Light 1")
//	f.AddSlider("intensity", 0, 10, 0.01,
//		func() float64 { return l.Intensity },
//		func(v float64) { l.Intensity = v })
//
// Press H to slide the panel out of view.
//
// # Scripted runs
//
// A JSON script loaded with [LoadTestScript] and attached with
// [App.SetTestRunner] injects pointer input, edits panel controls and queues
// PNG screenshots, one step per frame:
//
//	{"steps": [
//		{"action": "scroll", "y": 400},
//		{"action": "color", "folder": "Light 2", "label": "color", "color": "#00ff88"},
//		{"action": "screenshot", "label": "scrolled"}
//	]}
//
// [Ebitengine]: https://ebitengine.org
package aureole
