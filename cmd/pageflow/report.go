package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"pageflow/pkg/config"
	"pageflow/pkg/format"
	"pageflow/pkg/geom"
	"pageflow/pkg/layout"
	"pageflow/pkg/listbox"
	"pageflow/pkg/render"
	"pageflow/pkg/text"
)

const (
	titleGroup layout.GroupID = iota
	tableGroup
)

type reportOptions struct {
	dumpPath string
	rows     int
	seed     int64
	fontPath string
}

func newReportCmd(root *rootOptions) *cobra.Command {
	opts := &reportOptions{rows: -1}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Lay out a demo ledger report and summarize the placements",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := root.load()
			if err != nil {
				return err
			}
			defer logger.Sync()

			if opts.rows >= 0 {
				cfg.Table.Rows = opts.rows
			}
			if cmd.Flags().Changed("seed") {
				cfg.Table.Seed = opts.seed
			}
			measurer, err := loadMeasurer(opts.fontPath, cfg.Table.ItemFontSize)
			if err != nil {
				return err
			}

			r := buildReport(cfg, logger, measurer)
			logger.Info("report laid out",
				zap.Int("pages", r.doc.PageCount()), zap.Int("rows", cfg.Table.Rows))

			if err := r.summarize(cmd.OutOrStdout()); err != nil {
				return err
			}
			if opts.dumpPath != "" {
				if err := r.dump(opts.dumpPath); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote instructions to %s\n", opts.dumpPath)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.dumpPath, "dump", "", "write every drawing instruction as YAML to this file")
	cmd.Flags().IntVar(&opts.rows, "rows", -1, "number of ledger rows (overrides table.rows)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "seed for generated row data (overrides table.seed)")
	cmd.Flags().StringVar(&opts.fontPath, "font", "", "TrueType font to measure text with")
	return cmd
}

func loadMeasurer(path string, points float64) (text.Measurer, error) {
	if path == "" {
		return text.DefaultGlyphTable(), nil
	}
	m, err := text.LoadFaceMeasurer(path, points)
	if err != nil {
		return nil, err
	}
	return m, nil
}

type report struct {
	engine *layout.Engine
	doc    *render.Document
	table  *listbox.ListBox
}

func borderStyle(t config.TableConfig) listbox.BorderStyle {
	switch t.Border {
	case "inner":
		return listbox.Inner(t.InnerThickness)
	case "outer":
		return listbox.Outer(t.OuterThickness)
	case "all":
		return listbox.All(t.InnerThickness, t.OuterThickness)
	default:
		return listbox.None()
	}
}

// ledgerRows generates account lines with a subtotal after every tenth row
// and an unbordered section note every 25 rows.
func ledgerRows(n int, seed int64) ([]listbox.Row, []float64) {
	rng := rand.New(rand.NewSource(seed))
	rows := make([]listbox.Row, 0, n+n/10+n/25)
	heights := make([]float64, 0, cap(rows))
	subtotal := 0.0
	for i := 0; i < n; i++ {
		amount := float64(rng.Intn(2000000)-400000) / 100
		subtotal += amount
		rows = append(rows, listbox.NewRow(
			fmt.Sprintf("ACCT-%04d", i+1),
			strconv.FormatFloat(amount, 'f', 2, 64),
			strconv.Itoa(rng.Intn(500)-50),
			strconv.FormatFloat(subtotal, 'f', 2, 64),
		))
		heights = append(heights, float64(12+rng.Intn(28)))

		if (i+1)%10 == 0 {
			label := fmt.Sprintf("Subtotal through ACCT-%04d: %s", i+1, strconv.FormatFloat(subtotal, 'f', 2, 64))
			rows = append(rows, listbox.NewSingleSpanWithColor(label, geom.Color{R: 0, G: 0, B: 0.6}, text.RightCenter.Indented(0.1)))
			heights = append(heights, 16)
		}
		if (i+1)%25 == 0 {
			rows = append(rows, listbox.NewSingleSpanNoBorder("Continued", text.CenterCenter))
			heights = append(heights, 14)
		}
	}
	return rows, heights
}

func buildReport(cfg *config.Config, logger *zap.Logger, measurer text.Measurer) *report {
	p := cfg.Page
	engine := layout.NewEngine(p.WidthIn, p.HeightIn, p.DPI, p.TopMarginIn, p.BottomMarginIn)
	engine.SetLogger(logger.Named("layout"))
	doc := render.NewDocument()

	var borders *layout.BorderCollector
	if cfg.Table.DeferBorders {
		borders = layout.NewBorderCollector()
	}

	titleFont := text.NewFont(text.Helvetica, 18)
	engine.PlaceNow(text.LineHeight(titleFont.Size, p.DPI), layout.FullWidth, doc,
		text.NewTextBox("Ledger", titleFont,
			text.WithAlignment(text.CenterCenter),
			text.WithGroup(titleGroup),
			text.WithMeasurer(measurer),
			text.WithDescentCompensation()),
		borders)

	infoFont := text.NewFont(text.Helvetica, 9)
	infoHeight := text.LineHeight(infoFont.Size, p.DPI)
	engine.PlaceNow(infoHeight, layout.Cols(0, 50), doc,
		text.NewTextBox(fmt.Sprintf("Seed %d", cfg.Table.Seed), infoFont,
			text.WithAlignment(text.LeftBottom.Indented(0.25)), text.WithGroup(titleGroup), text.WithMeasurer(measurer)),
		borders)
	engine.PlaceNow(infoHeight, layout.Cols(50, 100), doc,
		text.NewTextBox(fmt.Sprintf("%d accounts", cfg.Table.Rows), infoFont,
			text.WithAlignment(text.RightBottom.Indented(0.25)), text.WithGroup(titleGroup), text.WithMeasurer(measurer)),
		borders)

	rows, heights := ledgerRows(cfg.Table.Rows, cfg.Table.Seed)
	header := listbox.NewRow("Account", "Amount", "Units", "Balance")
	t := cfg.Table
	table := listbox.New(engine, rows, []int{30, 25, 15, 30}, &header,
		text.NewFont(t.ItemFont, t.ItemFontSize),
		text.NewFont(t.HeaderFont, t.HeaderFontSize),
		borderStyle(t), tableGroup)
	table.SetLogger(logger.Named("listbox"))
	table.SetRowHeights(heights)
	table.SetHeaderHasBorder(t.HeaderBorder)
	table.SetInteriorMargin(t.InteriorMargin)
	table.SetMeasurer(measurer)
	table.SetColumnTypes([]format.ColumnType{format.Text, format.CurrencyOf(2), format.NumberOf(0), format.GroupedCurrencyOf(2)})
	table.SetItemAlignments([]text.Alignment{text.LeftCenter.Indented(0.05), text.RightCenter.Indented(0.05), text.RightCenter.Indented(0.05), text.RightCenter.Indented(0.05)})
	table.SetHeaderAlignments([]text.Alignment{text.CenterCenter, text.CenterCenter, text.CenterCenter, text.CenterCenter})

	h := engine.Handle(layout.FullWidth, false)
	h.Draw(table, doc, borders)

	if borders != nil {
		borders.Flush(doc)
	}
	return &report{engine: engine, doc: doc, table: table}
}

// summarize prints one line per page and the bounds of each group.
func (r *report) summarize(w io.Writer) error {
	pages := tablewriter.NewWriter(w)
	pages.SetHeader([]string{"Page", "Instructions", "Text", "Lines", "Frames"})
	pages.SetAlignment(tablewriter.ALIGN_RIGHT)
	for i := 0; i < r.doc.PageCount(); i++ {
		pages.Append([]string{
			strconv.Itoa(i + 1),
			strconv.Itoa(len(r.doc.Page(i))),
			strconv.Itoa(r.doc.Count(i, render.OpText)),
			strconv.Itoa(r.doc.Count(i, render.OpLine)),
			strconv.Itoa(r.doc.Count(i, render.OpStrokeRect)),
		})
	}
	pages.Render()

	groups := tablewriter.NewWriter(w)
	groups.SetHeader([]string{"Group", "Page", "Bounds"})
	groups.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})
	bounds := r.engine.GroupBounds()
	for _, id := range r.engine.Groups() {
		for page, b := range bounds[id] {
			if b == (geom.Rect{}) {
				continue
			}
			groups.Append([]string{groupName(id), strconv.Itoa(page + 1), b.String()})
		}
	}
	groups.Render()

	_, err := fmt.Fprintf(w, "%d pages, %d table rows drawn, %d frame segments\n",
		r.doc.PageCount(), len(r.table.Placements()), len(r.table.Extents()))
	return err
}

func groupName(id layout.GroupID) string {
	switch id {
	case titleGroup:
		return "title"
	case tableGroup:
		return "table"
	default:
		return strconv.Itoa(int(id))
	}
}

type pageDump struct {
	Page         int                  `yaml:"page"`
	Instructions []render.Instruction `yaml:"instructions"`
}

func (r *report) dump(path string) error {
	out := make([]pageDump, r.doc.PageCount())
	for i := range out {
		out[i] = pageDump{Page: i, Instructions: r.doc.Page(i)}
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("encoding instructions: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

