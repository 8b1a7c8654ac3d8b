package main

import (
	"fmt"
	"image"
	"image/png"
	"path/filepath"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/iafilius/LangmuirSweep/src/analysis"
	"github.com/iafilius/LangmuirSweep/src/config"
	"github.com/iafilius/LangmuirSweep/src/logging"
	"github.com/iafilius/LangmuirSweep/src/render"
)

// showWindow displays the figure and blocks until the window is closed.
func showWindow(cfg config.Config, res *analysis.Result, fig *render.Figure) {
	defer logging.TimeTrack(time.Now(), "viewer session")
	a := app.NewWithID("io.github.iafilius.langmuirsweep")
	w := a.NewWindow("Sweep – " + filepath.Base(cfg.File))

	img := canvas.NewImageFromImage(fig.Image)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(float32(cfg.Width), float32(cfg.Height)))

	idle := fmt.Sprintf("head: %s    tail: %s", res.Head, res.Tail)
	status := widget.NewLabel(idle)
	overlay := newReadoutOverlay(res, fig, img, status, idle)

	w.SetMainMenu(fyne.NewMainMenu(fyne.NewMenu("File",
		fyne.NewMenuItem("Export PNG…", func() { exportChartPNG(w, fig.Image, defaultPNGName(cfg.File)) }),
	)))
	w.SetContent(container.NewBorder(nil, status, nil, nil, overlay))
	w.SetMaster()
	w.ShowAndRun()
}

// readoutOverlay wraps the chart image and reports the nearest sample under the pointer.
type readoutOverlay struct {
	widget.BaseWidget
	res    *analysis.Result
	fig    *render.Figure
	img    *canvas.Image
	status *widget.Label
	idle   string
}

func newReadoutOverlay(res *analysis.Result, fig *render.Figure, img *canvas.Image, status *widget.Label, idle string) *readoutOverlay {
	o := &readoutOverlay{res: res, fig: fig, img: img, status: status, idle: idle}
	o.ExtendBaseWidget(o)
	return o
}

func (o *readoutOverlay) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(o.img)
}

func (o *readoutOverlay) MouseMoved(ev *desktop.MouseEvent) {
	b := o.fig.Image.Bounds()
	sz := o.Size()
	px, py, ok := viewToImage(ev.Position.X, ev.Position.Y, float32(b.Dx()), float32(b.Dy()), sz.Width, sz.Height)
	if !ok {
		o.status.SetText(o.idle)
		return
	}
	if text, ok := readoutText(o.res, o.fig, px, py); ok {
		o.status.SetText(text)
		return
	}
	o.status.SetText(o.idle)
}

func (o *readoutOverlay) MouseIn(*desktop.MouseEvent) {}
func (o *readoutOverlay) MouseOut()                   { o.status.SetText(o.idle) }

var _ desktop.Hoverable = (*readoutOverlay)(nil)

// exportChartPNG asks for a destination and writes the rendered chart there.
func exportChartPNG(w fyne.Window, img image.Image, defaultName string) {
	if img == nil {
		dialog.ShowInformation("Export", "No chart to export.", w)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		if wc == nil {
			return
		}
		defer wc.Close()
		if err := png.Encode(wc, img); err != nil {
			dialog.ShowError(err, w)
			return
		}
		logging.Infof("chart exported to %s", wc.URI())
	}, w)
	fs.SetFileName(defaultName)
	fs.Show()
}
