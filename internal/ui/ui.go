// Package ui renders the game window with gioui: a 9x9 board filled in
// from the keyboard, live validity coloring, and New/Clear/Solve/Hint
// controls. All rule decisions come from the core packages; this layer
// only draws state and forwards input.
package ui

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"time"

	"gioui.org/app"
	"gioui.org/font"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/sirupsen/logrus"

	"svw.info/sudokugame/internal/domain"
	"svw.info/sudokugame/internal/game"
	"svw.info/sudokugame/internal/usecase"
)

const cellSizeDp = unit.Dp(56)
const textSize = unit.Sp(24)

type UI struct {
	uc      *usecase.Service
	session *game.Session
	logger  *logrus.Logger

	theme    *material.Theme
	selected domain.CellCoord
	hintCell *domain.CellCoord
	status   string

	btnNew   widget.Clickable
	btnClear widget.Clickable
	btnSolve widget.Clickable
	btnHint  widget.Clickable
}

func New(uc *usecase.Service, logger *logrus.Logger) *UI {
	return &UI{
		uc:     uc,
		logger: logger,
		theme:  material.NewTheme(),
	}
}

// Run opens the window and blocks until it is closed.
// It must be called from the main goroutine (app.Main requirement).
func (u *UI) Run() {
	if err := u.newGame(); err != nil {
		u.logger.WithError(err).Fatal("initial puzzle generation failed")
	}

	go func() {
		window := new(app.Window)
		window.Option(
			app.Title("Sudoku"),
			app.Size(unit.Dp(9)*cellSizeDp+unit.Dp(16), unit.Dp(9)*cellSizeDp+unit.Dp(120)),
		)
		if err := u.loop(window); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func (u *UI) newGame() error {
	seed := time.Now().UnixNano()
	p, st, err := u.uc.Generate(context.Background(), seed)
	if err != nil {
		return err
	}
	u.logger.WithFields(logrus.Fields{
		"seed":   seed,
		"givens": p.Board.FilledCount(),
		"nodes":  st.Nodes,
		"dur":    st.Duration.Round(time.Millisecond),
	}).Info("new puzzle")
	u.session = game.New(p)
	u.selected = domain.CellCoord{}
	u.hintCell = nil
	u.status = ""
	return nil
}

func (u *UI) loop(window *app.Window) error {
	var ops op.Ops
	for {
		switch e := window.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			u.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (u *UI) layout(gtx layout.Context) {
	u.handleButtons(gtx)

	layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(u.layoutBoard),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(u.layoutButtons),
			layout.Rigid(layout.Spacer{Height: unit.Dp(4)}.Layout),
			layout.Rigid(u.layoutStatus),
		)
	})
}

func (u *UI) handleButtons(gtx layout.Context) {
	if u.btnNew.Clicked(gtx) {
		if err := u.newGame(); err != nil {
			u.status = err.Error()
		}
	}
	if u.btnClear.Clicked(gtx) {
		u.session.Clear()
		u.hintCell = nil
		u.status = ""
	}
	if u.btnSolve.Clicked(gtx) {
		u.session.Reveal()
		u.hintCell = nil
		u.status = ""
	}
	if u.btnHint.Clicked(gtx) {
		merged := u.session.Merged()
		h, found, err := u.uc.Hint(context.Background(), &merged)
		switch {
		case err != nil:
			u.status = err.Error()
		case found:
			u.status = h.Message
			u.hintCell = &h.Cells[0]
		default:
			u.status = "No single-candidate cell found"
			u.hintCell = nil
		}
	}
}

// keyFilters lists every key the board reacts to; gio delivers only
// filtered events.
func (u *UI) keyFilters() []event.Filter {
	names := []key.Name{
		"1", "2", "3", "4", "5", "6", "7", "8", "9", "0",
		key.NameDeleteBackward, key.NameDeleteForward,
		key.NameUpArrow, key.NameDownArrow, key.NameLeftArrow, key.NameRightArrow,
	}
	filters := make([]event.Filter, 0, len(names)+1)
	filters = append(filters, key.FocusFilter{Target: u})
	for _, n := range names {
		filters = append(filters, key.Filter{Focus: u, Name: n})
	}
	return filters
}

func (u *UI) layoutBoard(gtx layout.Context) layout.Dimensions {
	cellPx := gtx.Dp(cellSizeDp)
	boardPx := cellPx * 9

	// input area covering the board
	area := clip.Rect(image.Rect(0, 0, boardPx, boardPx)).Push(gtx.Ops)
	event.Op(gtx.Ops, u)
	gtx.Execute(key.FocusCmd{Tag: u})
	u.handleInput(gtx, cellPx)
	area.Pop()

	merged := u.session.Merged()
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			u.drawCell(gtx, &merged, r, c, cellPx)
		}
	}
	u.drawGridLines(gtx, cellPx, boardPx)

	return layout.Dimensions{Size: image.Pt(boardPx, boardPx)}
}

func (u *UI) handleInput(gtx layout.Context, cellPx int) {
	filters := append(u.keyFilters(), pointer.Filter{
		Target: u,
		Kinds:  pointer.Press,
	})
	for {
		ev, ok := gtx.Event(filters...)
		if !ok {
			break
		}
		switch x := ev.(type) {
		case pointer.Event:
			if x.Kind == pointer.Press {
				col := int(x.Position.X) / cellPx
				row := int(x.Position.Y) / cellPx
				if row >= 0 && row < 9 && col >= 0 && col < 9 {
					u.selected = domain.CellCoord{Row: row, Col: col}
				}
			}
		case key.Event:
			if x.State == key.Press {
				u.handleKey(x.Name)
			}
		}
	}
}

func (u *UI) handleKey(name key.Name) {
	r, c := u.selected.Row, u.selected.Col
	switch name {
	case key.NameUpArrow:
		if r > 0 {
			u.selected.Row--
		}
	case key.NameDownArrow:
		if r < 8 {
			u.selected.Row++
		}
	case key.NameLeftArrow:
		if c > 0 {
			u.selected.Col--
		}
	case key.NameRightArrow:
		if c < 8 {
			u.selected.Col++
		}
	case "0", key.NameDeleteBackward, key.NameDeleteForward:
		u.session.Erase(r, c)
		u.hintCell = nil
	default:
		if len(name) == 1 && name[0] >= '1' && name[0] <= '9' {
			u.enterDigit(r, c, uint8(name[0]-'0'))
		}
	}
}

func (u *UI) enterDigit(r, c int, digit uint8) {
	status, err := u.session.Enter(r, c, digit)
	if err != nil {
		u.status = err.Error()
		return
	}
	u.hintCell = nil
	if status == domain.CellConflict {
		u.status = fmt.Sprintf("%d conflicts with its row, column, or box", digit)
	} else {
		u.status = ""
	}
	if u.session.Won() {
		u.status = "You have won! Press New to play again."
	}
}

func (u *UI) drawCell(gtx layout.Context, merged *domain.Board, r, c, cellPx int) {
	x, y := c*cellPx, r*cellPx

	bg := whiteColor
	if ((r/3)+(c/3))%2 != 0 {
		bg = lightGrayColor
	}
	if u.hintCell != nil && u.hintCell.Row == r && u.hintCell.Col == c {
		bg = hintColor
	}
	if u.selected.Row == r && u.selected.Col == c {
		bg = selectionColor
	}
	fillRect(gtx.Ops, x, y, cellPx, cellPx, bg)

	v := merged.Values[r][c]
	if v == 0 {
		return
	}
	var fg color.NRGBA
	switch u.session.Status(r, c) {
	case domain.CellGiven:
		fg = blackColor
	case domain.CellConflict:
		fg = redColor
	default:
		fg = greenColor
	}
	u.drawDigit(gtx, x, y, cellPx, v, fg)
}

func (u *UI) drawDigit(gtx layout.Context, x, y, cellPx int, v uint8, fg color.NRGBA) {
	stack := op.Offset(image.Pt(x, y)).Push(gtx.Ops)
	defer stack.Pop()

	cgtx := gtx
	cgtx.Constraints = layout.Exact(image.Pt(cellPx, cellPx))
	lbl := material.Label(u.theme, textSize, fmt.Sprintf("%d", v))
	lbl.Color = fg
	lbl.Alignment = text.Middle
	lbl.Font.Weight = font.Bold
	layout.Center.Layout(cgtx, lbl.Layout)
}

func (u *UI) drawGridLines(gtx layout.Context, cellPx, boardPx int) {
	for i := 0; i <= 9; i++ {
		w := 1
		if i%3 == 0 {
			w = 3
		}
		fillRect(gtx.Ops, i*cellPx-w/2, 0, w, boardPx, lineColor)
		fillRect(gtx.Ops, 0, i*cellPx-w/2, boardPx, w, lineColor)
	}
}

func fillRect(ops *op.Ops, x, y, w, h int, col color.NRGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	paint.FillShape(ops, col, clip.Rect(image.Rect(x, y, x+w, y+h)).Op())
}

func (u *UI) layoutButtons(gtx layout.Context) layout.Dimensions {
	spacer := layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout)
	btn := func(c *widget.Clickable, label string) layout.FlexChild {
		return layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return material.Button(u.theme, c, label).Layout(gtx)
		})
	}
	return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
		btn(&u.btnNew, "New"),
		spacer,
		btn(&u.btnClear, "Clear"),
		spacer,
		btn(&u.btnSolve, "Solve"),
		spacer,
		btn(&u.btnHint, "Hint"),
	)
}

func (u *UI) layoutStatus(gtx layout.Context) layout.Dimensions {
	msg := u.status
	col := statusColor
	if u.session.Won() {
		col = winColor
	}
	lbl := material.Label(u.theme, unit.Sp(16), msg)
	lbl.Color = col
	return lbl.Layout(gtx)
}
