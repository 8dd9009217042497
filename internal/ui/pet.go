package ui

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	xwidget "fyne.io/x/fyne/widget"

	"github.com/lishuoqwq/MaltesePet/internal/config"
	"github.com/lishuoqwq/MaltesePet/internal/manager"
	"github.com/lishuoqwq/MaltesePet/internal/model"
	"github.com/lishuoqwq/MaltesePet/internal/platform"
	"github.com/lishuoqwq/MaltesePet/internal/store"
)

// PetSurface is the frameless overlay window that renders the active
// animation and feeds user actions into the animation set manager. It
// owns the active selection; the manager stays stateless.
type PetSurface struct {
	app        fyne.App
	window     fyne.Window
	animations manager.Animations
	settings   *config.Settings
	loc        *Localization
	gifFolder  string

	gif       *xwidget.AnimatedGif
	idleLabel *widget.Label
	pet       *petWidget
	canvasBox *fyne.Container

	current string

	autoStop chan struct{}
}

// NewPetSurface creates the pet window and loads the default animation,
// degrading to an idle placeholder when no animation exists anywhere.
func NewPetSurface(a fyne.App, animations manager.Animations, settings *config.Settings, loc *Localization, gifFolder string) *PetSurface {
	ps := &PetSurface{
		app:        a,
		animations: animations,
		settings:   settings,
		loc:        loc,
		gifFolder:  gifFolder,
	}

	// Splash windows are borderless and stay above normal windows; fall
	// back to a titled window on drivers without desktop support.
	if drv, ok := a.Driver().(desktop.Driver); ok {
		ps.window = drv.CreateSplashWindow()
	} else {
		ps.window = a.NewWindow(loc.GetText(KeyAppTitle))
	}

	gifWidget, err := xwidget.NewAnimatedGif(nil)
	if err != nil {
		log.Printf("Failed to initialize animation widget: %v", err)
	}
	ps.gif = gifWidget

	ps.idleLabel = widget.NewLabel(loc.GetText(KeyNoAnimations))
	ps.idleLabel.Hide()

	ps.pet = newPetWidget(container.NewStack(ps.gif, ps.idleLabel))
	ps.pet.onDragged = ps.onPetDragged
	ps.pet.onSecondaryTapped = ps.onPetSecondaryTapped

	ps.canvasBox = container.NewWithoutLayout(ps.pet)
	ps.window.SetContent(ps.canvasBox)
	ps.applyPetSize(ps.settings.GetPetSize())

	if p, err := ps.animations.Default(); err != nil {
		if errors.Is(err, model.ErrEmptyCollection) {
			log.Printf("No animation files found, showing idle state")
			ps.showIdle()
		} else {
			log.Printf("Failed to resolve default animation: %v", err)
			ps.showIdle()
		}
	} else {
		ps.LoadAnimation(p)
	}

	return ps
}

// Current returns the path of the animation currently rendered, or empty
// in the idle state.
func (ps *PetSurface) Current() string {
	return ps.current
}

// LoadAnimation hot-swaps the displayed animation. A path that no longer
// exists is logged and ignored, leaving the current display untouched.
func (ps *PetSurface) LoadAnimation(p string) {
	norm := platform.NormalizePath(p)
	if _, err := os.Stat(filepath.FromSlash(norm)); err != nil {
		log.Printf("Animation file does not exist: %s", norm)
		return
	}

	ps.gif.Stop()
	if err := ps.gif.Load(storage.NewFileURI(filepath.FromSlash(norm))); err != nil {
		log.Printf("Failed to load animation %s: %v", norm, err)
		return
	}

	size := float32(ps.settings.GetPetSize())
	ps.gif.SetMinSize(fyne.NewSize(size, size))
	ps.gif.Show()
	ps.idleLabel.Hide()
	ps.gif.Start()
	ps.current = norm
	log.Printf("Loaded animation: %s", path.Base(norm))
}

// showIdle clears the display into the no-animation state.
func (ps *PetSurface) showIdle() {
	ps.gif.Stop()
	if err := ps.gif.Load(nil); err != nil {
		log.Printf("Failed to clear animation: %v", err)
	}
	ps.gif.Hide()
	ps.idleLabel.Show()
	ps.current = ""
}

// NotifyCollectionChanged is invoked by the store watcher when animation
// files appear or disappear on disk. Safe to call from any goroutine.
func (ps *PetSurface) NotifyCollectionChanged() {
	fyne.Do(func() {
		list := ps.animations.OrderedList()
		if len(list) == 0 {
			ps.showIdle()
			return
		}
		for _, p := range list {
			if p == ps.current {
				return
			}
		}
		// The active file vanished underneath us; fall over to the head
		// of the list.
		ps.LoadAnimation(list[0])
	})
}

// onPetDragged moves the pet within the window canvas.
func (ps *PetSurface) onPetDragged(ev *fyne.DragEvent) {
	pos := ps.pet.Position()
	ps.pet.Move(fyne.NewPos(pos.X+ev.Dragged.DX, pos.Y+ev.Dragged.DY))
}

// onPetSecondaryTapped opens the context menu at the click position.
func (ps *PetSurface) onPetSecondaryTapped(ev *fyne.PointEvent) {
	widget.ShowPopUpMenuAtPosition(ps.buildContextMenu(), ps.window.Canvas(), ev.AbsolutePosition)
}

// buildContextMenu assembles the right-click menu. Submenus with one item
// per animation/size/interval bind their argument through a local copy
// and route everything else through the command dispatch table.
func (ps *PetSurface) buildContextMenu() *fyne.Menu {
	// Switch-animation submenu
	var switchItems []*fyne.MenuItem
	for _, p := range ps.animations.OrderedList() {
		animPath := p // Capture for closure
		item := fyne.NewMenuItem(path.Base(p), func() {
			ps.LoadAnimation(animPath)
		})
		item.Checked = p == ps.current
		switchItems = append(switchItems, item)
	}
	switchItem := fyne.NewMenuItem(ps.loc.GetText(KeySwitchAnimation), nil)
	switchItem.ChildMenu = fyne.NewMenu("", switchItems...)

	// Manage submenu
	manageItem := fyne.NewMenuItem(ps.loc.GetText(KeyManageAnimations), nil)
	manageItem.ChildMenu = fyne.NewMenu("",
		ps.commandItem(KeyImportGif, CmdImport),
		ps.commandItem(KeyDeleteCurrent, CmdDeleteCurrent),
		ps.commandItem(KeyCustomOrder, CmdCustomOrder),
		ps.commandItem(KeyOpenGifFolder, CmdOpenGifFolder),
	)

	// Auto-switch submenu
	toggleItem := ps.commandItem(KeyEnableAutoAdvance, CmdToggleAutoAdvance)
	toggleItem.Checked = ps.settings.GetAutoAdvanceEnabled()

	var intervalItems []*fyne.MenuItem
	for _, sec := range config.AutoAdvanceIntervalOptions {
		seconds := sec // Capture for closure
		item := fyne.NewMenuItem(ps.loc.GetText(intervalLabelKey(sec)), func() {
			ps.setAutoAdvanceInterval(seconds)
		})
		item.Checked = sec == ps.settings.GetAutoAdvanceIntervalSec()
		intervalItems = append(intervalItems, item)
	}
	intervalItem := fyne.NewMenuItem(ps.loc.GetText(KeySwitchInterval), nil)
	intervalItem.ChildMenu = fyne.NewMenu("", intervalItems...)

	autoItem := fyne.NewMenuItem(ps.loc.GetText(KeyAutoAdvance), nil)
	autoItem.ChildMenu = fyne.NewMenu("", toggleItem, intervalItem)

	// Resize submenu
	var sizeItems []*fyne.MenuItem
	for _, s := range config.PetSizeOptions {
		size := s // Capture for closure
		item := fyne.NewMenuItem(fmt.Sprintf("%dx%d", s, s), func() {
			ps.setPetSize(size)
		})
		item.Checked = s == ps.settings.GetPetSize()
		sizeItems = append(sizeItems, item)
	}
	sizeItem := fyne.NewMenuItem(ps.loc.GetText(KeyResize), nil)
	sizeItem.ChildMenu = fyne.NewMenu("", sizeItems...)

	return fyne.NewMenu(ps.loc.GetText(KeyAppTitle),
		switchItem,
		manageItem,
		autoItem,
		sizeItem,
		fyne.NewMenuItemSeparator(),
		ps.commandItem(KeyQuit, CmdQuit),
	)
}

// commandItem builds a menu item that dispatches a command.
func (ps *PetSurface) commandItem(textKey string, cmd Command) *fyne.MenuItem {
	return fyne.NewMenuItem(ps.loc.GetText(textKey), func() {
		ps.Dispatch(cmd)
	})
}

// intervalLabelKey maps an interval option to its localization key.
func intervalLabelKey(seconds int) string {
	switch seconds {
	case 30:
		return KeyInterval30
	case 60:
		return KeyInterval60
	case 120:
		return KeyInterval120
	case 300:
		return KeyInterval300
	default:
		return KeySwitchInterval
	}
}

// importAnimation asks for a GIF file, imports it and activates it.
func (ps *PetSurface) importAnimation() {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ps.window)
			return
		}
		if rc == nil {
			return
		}
		source := rc.URI().Path()
		rc.Close()

		imported, err := ps.animations.ImportAndActivate(source)
		if err != nil {
			log.Printf("Failed to import %s: %v", source, err)
			dialog.ShowInformation(ps.loc.GetText(KeyError), ps.loc.GetText(KeyImportFailed), ps.window)
			return
		}
		ps.LoadAnimation(imported)
	}, ps.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{store.AnimationExt}))
	fd.Show()
}

// deleteCurrent runs the two-phase delete: request a plan, confirm with
// the user, release the animation handle, switch to the fallback, then
// commit the physical delete one deferral later.
func (ps *PetSurface) deleteCurrent() {
	if ps.current == "" {
		dialog.ShowInformation(ps.loc.GetText(KeyWarning), ps.loc.GetText(KeyNoGifWarning), ps.window)
		return
	}

	plan, err := ps.animations.RequestDelete(ps.current)
	if err != nil {
		if errors.Is(err, model.ErrLastItemProtected) {
			dialog.ShowInformation(ps.loc.GetText(KeyWarning), ps.loc.GetText(KeyLastGifWarning), ps.window)
			return
		}
		dialog.ShowError(err, ps.window)
		return
	}

	message := fmt.Sprintf(ps.loc.GetText(KeyConfirmDeleteMsg), path.Base(plan.DeletePath))
	dialog.ShowConfirm(ps.loc.GetText(KeyConfirmDeleteTitle), message, func(confirmed bool) {
		if !confirmed {
			return
		}

		// Release the handle and move the display off the doomed file
		// before anything touches the disk.
		ps.gif.Stop()
		if err := ps.gif.Load(nil); err != nil {
			log.Printf("Failed to release animation handle: %v", err)
		}
		ps.current = ""
		ps.LoadAnimation(plan.FallbackPath)

		time.AfterFunc(DeleteCommitDelay, func() {
			fyne.Do(func() {
				if err := ps.animations.CommitDelete(plan); err != nil {
					log.Printf("Delete failed for %s: %v", plan.DeletePath, err)
					dialog.ShowInformation(ps.loc.GetText(KeyError), ps.loc.GetText(KeyDeleteFailed), ps.window)
					return
				}
				dialog.ShowInformation(ps.loc.GetText(KeySuccess), ps.loc.GetText(KeyDeleteSuccess), ps.window)
			})
		})
	}, ps.window)
}

// customizeOrder shows the play-order dialog and applies the entered
// permutation.
func (ps *PetSurface) customizeOrder() {
	list := ps.animations.OrderedList()
	if len(list) == 0 {
		dialog.ShowInformation(ps.loc.GetText(KeyWarning), ps.loc.GetText(KeyNoAnimations), ps.window)
		return
	}

	var lines []string
	defaults := make([]string, 0, len(list))
	for i, p := range list {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, path.Base(p)))
		defaults = append(defaults, strconv.Itoa(i+1))
	}

	prompt := widget.NewLabel(ps.loc.GetText(KeyOrderPrompt) + "\n\n" + strings.Join(lines, "\n"))
	entry := widget.NewEntry()
	entry.SetText(strings.Join(defaults, ","))

	content := container.NewVBox(prompt, entry)
	confirm := dialog.NewCustomConfirm(ps.loc.GetText(KeyCustomOrder), ps.loc.GetText(KeySuccess), ps.loc.GetText(KeyWarning), content, func(confirmed bool) {
		if !confirmed {
			return
		}

		indexes, err := parseOrderInput(entry.Text)
		if err != nil {
			log.Printf("Failed to parse order input: %v", err)
			dialog.ShowInformation(ps.loc.GetText(KeyError), ps.loc.GetText(KeyInvalidOrder), ps.window)
			return
		}
		if err := ps.animations.ReorderByIndexes(indexes); err != nil {
			log.Printf("Reorder rejected: %v", err)
			dialog.ShowInformation(ps.loc.GetText(KeyError), ps.loc.GetText(KeyInvalidOrder), ps.window)
			return
		}
		dialog.ShowInformation(ps.loc.GetText(KeySuccess), ps.loc.GetText(KeyOrderSaved), ps.window)
	}, ps.window)
	confirm.Resize(fyne.NewSize(OrderDialogWidth, OrderDialogHeight))
	confirm.Show()
}

// openGifFolder reveals the user animation root in the file manager.
func (ps *PetSurface) openGifFolder() {
	if err := platform.OpenFolder(ps.gifFolder); err != nil {
		log.Printf("Failed to open gif folder: %v", err)
		dialog.ShowError(err, ps.window)
	}
}

// toggleAutoAdvance flips the auto-switch setting and restarts the timer.
func (ps *PetSurface) toggleAutoAdvance() {
	enabled := !ps.settings.GetAutoAdvanceEnabled()
	ps.settings.SetAutoAdvanceEnabled(enabled)
	log.Printf("Auto switch enabled: %v", enabled)
	ps.restartAutoAdvance()
}

// setAutoAdvanceInterval updates the timer interval, restarting a running
// timer so the new interval takes effect immediately.
func (ps *PetSurface) setAutoAdvanceInterval(seconds int) {
	ps.settings.SetAutoAdvanceIntervalSec(seconds)
	log.Printf("Auto switch interval set to %ds", seconds)
	ps.restartAutoAdvance()
}

// restartAutoAdvance stops any running timer and starts a fresh one when
// auto-switch is enabled. The ticking goroutine funnels all UI work back
// through fyne.Do, so ticks never overlap.
func (ps *PetSurface) restartAutoAdvance() {
	ps.stopAutoAdvance()
	if !ps.settings.GetAutoAdvanceEnabled() {
		return
	}

	stop := make(chan struct{})
	ps.autoStop = stop
	interval := time.Duration(ps.settings.GetAutoAdvanceIntervalSec()) * time.Second

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fyne.Do(ps.advance)
			case <-stop:
				return
			}
		}
	}()
}

// stopAutoAdvance stops the auto-switch timer if it is running.
func (ps *PetSurface) stopAutoAdvance() {
	if ps.autoStop != nil {
		close(ps.autoStop)
		ps.autoStop = nil
	}
}

// advance switches to the next animation in the cycle.
func (ps *PetSurface) advance() {
	next, err := ps.animations.SwitchToNext(ps.current)
	if err != nil {
		// Empty collection: stay idle until files show up
		return
	}
	ps.LoadAnimation(next)
	log.Printf("Auto-switched to %s", path.Base(next))
}

// setPetSize resizes the pet and reloads the current animation so it
// rescales.
func (ps *PetSurface) setPetSize(size int) {
	ps.settings.SetPetSize(size)
	ps.applyPetSize(size)
	if ps.current != "" {
		ps.LoadAnimation(ps.current)
	}
}

// applyPetSize lays out the pet and its canvas for the given size.
func (ps *PetSurface) applyPetSize(size int) {
	petSize := float32(size)
	canvasSize := petSize * PetCanvasScale

	ps.gif.SetMinSize(fyne.NewSize(petSize, petSize))
	ps.pet.Resize(fyne.NewSize(petSize, petSize))
	ps.pet.Move(fyne.NewPos((canvasSize-petSize)/2, (canvasSize-petSize)/2))
	ps.window.Resize(fyne.NewSize(canvasSize, canvasSize))
}

// Show makes the pet window visible.
func (ps *PetSurface) Show() {
	ps.window.Show()
}

// Hide hides the pet window without quitting.
func (ps *PetSurface) Hide() {
	ps.window.Hide()
}

// Quit stops timers, releases the animation handle and exits the app.
func (ps *PetSurface) Quit() {
	ps.stopAutoAdvance()
	ps.gif.Stop()
	ps.app.Quit()
}

// ShowAndRun starts the auto-switch timer if configured and enters the
// event loop. Blocks until the app quits.
func (ps *PetSurface) ShowAndRun() {
	ps.restartAutoAdvance()
	ps.window.ShowAndRun()
}

// petWidget wraps the animation display and forwards drag and right-click
// gestures to the surface.
type petWidget struct {
	widget.BaseWidget

	content           fyne.CanvasObject
	onDragged         func(*fyne.DragEvent)
	onSecondaryTapped func(*fyne.PointEvent)
}

// newPetWidget creates the gesture-forwarding wrapper around content.
func newPetWidget(content fyne.CanvasObject) *petWidget {
	p := &petWidget{content: content}
	p.ExtendBaseWidget(p)
	return p
}

// CreateRenderer renders the wrapped content.
func (p *petWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.content)
}

// Dragged implements fyne.Draggable.
func (p *petWidget) Dragged(ev *fyne.DragEvent) {
	if p.onDragged != nil {
		p.onDragged(ev)
	}
}

// DragEnd implements fyne.Draggable.
func (p *petWidget) DragEnd() {}

// TappedSecondary implements fyne.SecondaryTappable.
func (p *petWidget) TappedSecondary(ev *fyne.PointEvent) {
	if p.onSecondaryTapped != nil {
		p.onSecondaryTapped(ev)
	}
}
