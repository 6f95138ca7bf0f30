// Package pdf genera el portafolio docente en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del docente + email │ Fecha de generación    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PERFIL: especialidad / formación / contacto / bio           │
//	│  INDICADORES: prácticas │ seminarios │ PDFs │ % prácticas    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Tipo | Título | Desde | Hasta | Soporte              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESÚMENES: contenido extraído de cada soporte               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Portafolio-api/internal/application/ports"
	"github.com/jhoicas/Portafolio-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que MarotoPDFGenerator implementa el puerto.
var _ ports.PortfolioPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// summaryChunk ancho máximo de línea para los resúmenes extraídos.
const summaryChunk = 110

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.PortfolioPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GeneratePortfolioPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GeneratePortfolioPDF(ctx context.Context, r ports.PortfolioReport) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Portafolio docente", true).
		WithAuthor(r.Teacher.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(profileRows(r.Teacher.Profile)...)
	m.AddRows(statsRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(r.Activities) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin actividades registradas.", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	m.AddRows(tableRows(r.Activities)...)

	if summaries := summaryRows(r.Activities); len(summaries) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		m.AddRows(summaries...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre + email (izq) y fecha de generación (der).
func headerRow(r ports.PortfolioReport) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(r.Teacher.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(r.Teacher.Email, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("PORTAFOLIO DOCENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+r.GeneratedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// profileRows: solo los campos del perfil que tienen contenido.
func profileRows(p *entity.TeacherProfile) []core.Row {
	if p == nil {
		return nil
	}
	fields := []struct{ label, value string }{
		{"Especialidad", p.Specialization},
		{"Formación", p.Qualifications},
		{"Contacto", p.ContactInfo},
		{"Perfil", p.Bio},
	}
	var rows []core.Row
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			continue
		}
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(f.label+":", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1})),
			col.New(10).Add(text.New(f.value, props.Text{Size: 8, Top: 1, Color: colorGray})),
		))
	}
	return rows
}

// statsRow: indicadores en cuatro columnas.
func statsRow(r ports.PortfolioReport) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Center, Color: colorPrimary, Top: 5}),
		)
	}
	return row.New(14).Add(
		cell("Prácticas", fmt.Sprint(r.PracticeCount)),
		cell("Seminarios", fmt.Sprint(r.SeminarCount)),
		cell("Soportes PDF", fmt.Sprint(r.TotalUploads)),
		cell("% Prácticas", r.PracticeShare.Shift(2).StringFixed(0)+"%"),
	)
}

// tableHeaderRow: cabecera de la tabla de actividades.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Tipo", 2, align.Left),
		h("Título", 5, align.Left),
		h("Desde", 2, align.Center),
		h("Hasta", 2, align.Center),
		h("PDF", 1, align.Center),
	)
}

// tableRows: una fila por actividad, en orden de registro.
func tableRows(activities []entity.Activity) []core.Row {
	result := make([]core.Row, 0, len(activities))
	for _, a := range activities {
		proof := "No"
		if a.HasUpload() {
			proof = "Sí"
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(typeLabel(a.Type), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(5).Add(text.New(a.Title, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(a.FromDate, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(a.ToDate, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(proof, props.Text{Size: 8, Align: align.Center, Top: 1})),
		))
	}
	return result
}

// summaryRows: título + contenido extraído partido en líneas.
func summaryRows(activities []entity.Activity) []core.Row {
	var rows []core.Row
	for _, a := range activities {
		if a.ExtractedContent == "" {
			continue
		}
		if rows == nil {
			rows = append(rows, row.New(6).Add(col.New(12).Add(
				text.New("RESÚMENES DE SOPORTES", props.Text{
					Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
				}),
			)))
		}
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(a.Title+" ("+a.FileName+")", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1}),
		)))
		for _, ln := range wrapLines(a.ExtractedContent, summaryChunk) {
			if ln == "" {
				rows = append(rows, row.New(2))
				continue
			}
			rows = append(rows, row.New(4).Add(col.New(12).Add(
				text.New(ln, props.Text{Size: 7, Color: colorGray, Top: 0.5, Left: 2}),
			)))
		}
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func typeLabel(t entity.ActivityType) string {
	switch t {
	case entity.ActivityPractice:
		return "Práctica"
	case entity.ActivitySeminar:
		return "Seminario"
	default:
		return string(t)
	}
}

// wrapLines parte cada párrafo de s en líneas de max n runas, cortando en espacios.
// Un párrafo vacío produce "" y una palabra más larga que n se corta por runas.
func wrapLines(s string, n int) []string {
	var out []string
	for _, para := range strings.Split(strings.TrimRight(s, "\r\n"), "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		var cur []rune
		for _, w := range words {
			wr := []rune(w)
			if len(cur) > 0 && len(cur)+1+len(wr) > n {
				out = append(out, string(cur))
				cur = cur[:0]
			}
			for len(wr) > n {
				if len(cur) > 0 {
					out = append(out, string(cur))
					cur = cur[:0]
				}
				out = append(out, string(wr[:n]))
				wr = wr[n:]
			}
			if len(cur) > 0 {
				cur = append(cur, ' ')
			}
			cur = append(cur, wr...)
		}
		if len(cur) > 0 {
			out = append(out, string(cur))
		}
	}
	return out
}
