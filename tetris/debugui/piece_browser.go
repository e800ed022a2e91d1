package debugui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/stackfall/tetris"
)

type pieceRow struct {
	ID     tetris.PieceID
	Type   tetris.PieceType
	Cells  int
	Bottom int
}

type pieceCache struct {
	rows          []pieceRow
	sortColumn    int
	sortAscending bool
}

// PieceBrowser lists locked pieces and shows the cells of the selected one
type PieceBrowser struct {
	filterText    string
	piecesPerPage int32
	currentPage   int
	selected      tetris.PieceID
	hasSelection  bool
	cache         pieceCache
}

func NewPieceBrowser(piecesPerPage int32) *PieceBrowser {
	return &PieceBrowser{
		piecesPerPage: piecesPerPage,
		cache:         pieceCache{sortAscending: true},
	}
}

func (pb *PieceBrowser) Render(ctx *Context) {
	if !imgui.BeginV("Piece Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	pb.refresh(ctx.Game.Store)

	imgui.InputTextWithHint("##search", "Filter by type...", &pb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	imgui.SetNextItemWidth(80)
	if imgui.InputInt("Per page", &pb.piecesPerPage) {
		pb.piecesPerPage = max(pb.piecesPerPage, 1)
		pb.currentPage = 0
	}

	filtered := pb.filtered()
	imgui.Text(fmt.Sprintf("Pieces: %d / %d", len(filtered), len(pb.cache.rows)))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("PieceTable", 4, tableFlags, imgui.NewVec2(0, 200), 0) {
		imgui.TableSetupColumn("ID")
		imgui.TableSetupColumn("Type")
		imgui.TableSetupColumn("Cells")
		imgui.TableSetupColumn("Bottom Row")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			pb.cache.sortColumn = int(spec.ColumnIndex())
			pb.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortSpecs.SetSpecsDirty(false)
		}
		pb.sortRows(filtered)

		perPage := int(pb.piecesPerPage)
		start := min(pb.currentPage*perPage, len(filtered))
		end := min(start+perPage, len(filtered))

		for _, row := range filtered[start:end] {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			isSelected := pb.hasSelection && pb.selected == row.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", row.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				pb.selected = row.ID
				pb.hasSelection = true
			}
			imgui.TableNextColumn()
			imgui.Text(row.Type.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.Cells))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.Bottom))
		}

		imgui.EndTable()
	}

	pages := max((len(filtered)+int(pb.piecesPerPage)-1)/int(pb.piecesPerPage), 1)
	pb.currentPage = min(pb.currentPage, pages-1)
	if imgui.Button("Prev") && pb.currentPage > 0 {
		pb.currentPage--
	}
	imgui.SameLine()
	imgui.Text(fmt.Sprintf("Page %d / %d", pb.currentPage+1, pages))
	imgui.SameLine()
	if imgui.Button("Next") && pb.currentPage < pages-1 {
		pb.currentPage++
	}

	imgui.Separator()
	pb.renderSelected(ctx.Game.Store)

	imgui.End()
}

func (pb *PieceBrowser) refresh(store *tetris.PieceStore) {
	pb.cache.rows = pb.cache.rows[:0]
	for p := range store.Iter() {
		bottom := tetris.BoardHeight
		for _, c := range p.Cells {
			bottom = min(bottom, c.Y)
		}
		pb.cache.rows = append(pb.cache.rows, pieceRow{
			ID:     p.ID,
			Type:   p.Type,
			Cells:  len(p.Cells),
			Bottom: bottom,
		})
	}
}

func (pb *PieceBrowser) filtered() []pieceRow {
	if pb.filterText == "" {
		return slices.Clone(pb.cache.rows)
	}
	filter := strings.ToUpper(pb.filterText)
	var out []pieceRow
	for _, row := range pb.cache.rows {
		if strings.Contains(row.Type.String(), filter) {
			out = append(out, row)
		}
	}
	return out
}

func (pb *PieceBrowser) sortRows(rows []pieceRow) {
	slices.SortStableFunc(rows, func(a, b pieceRow) int {
		var c int
		switch pb.cache.sortColumn {
		case 1:
			c = cmp.Compare(a.Type, b.Type)
		case 2:
			c = cmp.Compare(a.Cells, b.Cells)
		case 3:
			c = cmp.Compare(a.Bottom, b.Bottom)
		default:
			c = cmp.Compare(a.ID, b.ID)
		}
		if !pb.cache.sortAscending {
			c = -c
		}
		return c
	})
}

func (pb *PieceBrowser) renderSelected(store *tetris.PieceStore) {
	if !pb.hasSelection {
		imgui.Text("No piece selected")
		return
	}
	piece := store.Get(pb.selected)
	if piece == nil {
		imgui.Text(fmt.Sprintf("Piece %d was cleared", pb.selected))
		return
	}

	imgui.Text(fmt.Sprintf("Piece %d (%s)", piece.ID, piece.Type))
	if imgui.TreeNodeStr("Cells") {
		for _, c := range piece.Cells {
			imgui.BulletText(fmt.Sprintf("(%d, %d)", c.X, c.Y))
		}
		imgui.TreePop()
	}
}
