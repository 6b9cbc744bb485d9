package board

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const helpText = "comandos: r recargar | > < partido | n p noticia | m N partido N | g N noticia N | e LIGA tabla | d detalle | q salir"

func readCommands(ctx context.Context, in io.Reader, out chan<- string) {
	defer close(out)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case out <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
}

// Execute runs one command line and reports whether the board should quit.
// Loads triggered here run in the background.
func (b *Board) Execute(ctx context.Context, line string) bool {
	verb, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch verb {
	case "":
		return false
	case "q", "quit", "salir":
		return true
	case "r":
		b.setStatus("recargando...")
		b.goBackground(ctx, func(ctx context.Context) {
			b.RefreshAll(ctx)
			b.setStatus("")
		})
	case ">":
		b.matchRotator.Next()
	case "<":
		b.matchRotator.Prev()
	case "n":
		b.newsRotator.Next()
	case "p":
		b.newsRotator.Prev()
	case "m", "g":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			b.setStatus(fmt.Sprintf("posición no válida: %q", arg))
			return false
		}
		if verb == "m" {
			b.matchRotator.Goto(n - 1)
		} else {
			b.newsRotator.Goto(n - 1)
		}
	case "e":
		b.ToggleStandings(arg)
	case "d":
		if _, ok := b.CurrentMatch(); !ok {
			b.setStatus("no hay partido seleccionado")
			return false
		}
		b.goBackground(ctx, func(ctx context.Context) { _ = b.LoadDetail(ctx) })
	case "h", "?":
		b.setStatus(helpText)
	default:
		b.setStatus(fmt.Sprintf("comando desconocido: %q (h para ayuda)", verb))
	}
	return false
}
