// Command board-report paints a board from scripted drags without opening a
// window and prints the resulting grid report.
//
//	board-report -size "8 4" -drag "0,0:7,1=WATER" -drag "3,0=entity:ROCK"
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Garsondee/grid-painter/internal/config"
	"github.com/Garsondee/grid-painter/internal/editor"
	"github.com/Garsondee/grid-painter/internal/grid"
	"github.com/Garsondee/grid-painter/internal/logger"
)

// strokeList collects repeated -drag flags.
type strokeList []editor.Stroke

func (l *strokeList) String() string {
	parts := make([]string, len(*l))
	for i, s := range *l {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

func (l *strokeList) Set(raw string) error {
	s, err := editor.ParseStroke(raw)
	if err != nil {
		return err
	}
	*l = append(*l, s)
	return nil
}

func main() {
	logger.Init()

	var strokes strokeList
	var inspect string
	var copyReport bool

	fs := flag.CommandLine
	fs.Var(&strokes, "drag", `drag "x0,y0:x1,y1=KIND" in cell space (repeatable)`)
	fs.StringVar(&inspect, "inspect", "", `print the cell at "x,y" after painting`)
	fs.BoolVar(&copyReport, "copy", false, "also copy the report to the clipboard")

	cfg, err := config.FromFlags(fs, os.Args[1:])
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(2)
	}

	session, err := editor.NewSession(cfg, editor.CanvasOrigin, logger.Log)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(2)
	}
	if err := session.Replay(strokes...); err != nil {
		logger.Log.WithError(err).Fatal("replay failed")
	}

	fmt.Print(session.Board().Report())

	if inspect != "" {
		v, err := editor.ParseCell(inspect)
		if err != nil {
			fmt.Println("error:", err)
			os.Exit(2)
		}
		c, err := session.Board().Cell(v)
		if err != nil {
			fmt.Println("inspect:", err)
		} else {
			fmt.Println(describeCell(c))
		}
	}

	if copyReport {
		if err := session.CopyReport(); err != nil {
			logger.Log.WithError(err).Warn("clipboard unavailable")
		}
	}
	logger.Log.WithFields(logrus.Fields{"strokes": len(strokes)}).Debug("report done")
}

func describeCell(c *grid.Cell) string {
	entity := "-"
	if c.HasEntity() {
		entity = c.Entity.Name()
	}
	return fmt.Sprintf("cell %s ground=%s entity=%s", c.Pos, c.Ground.Name(), entity)
}
