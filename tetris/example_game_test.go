package tetris_test

import (
	"fmt"

	"github.com/plus3/stackfall/tetris"
)

// ExampleGame plays two frames: the first spawns a piece, the second hard drops
// it. Events reach subscribers once each frame has settled, and the returned
// snapshot lists the locked drawables before the active piece.
func ExampleGame() {
	game := tetris.NewGame(tetris.Options{RNG: firstRNG{}})
	game.Subscribe(func(ev tetris.Event) {
		fmt.Println(ev.Kind, ev.Piece)
	})

	game.Step(1.0/60, tetris.InputNone)
	snap := game.Step(1.0/60, tetris.InputHardDrop)

	fmt.Println("locked drawables:", snap.LockedCount)
	fmt.Println("full rewrite:", snap.FullRewrite)
	fmt.Println("next:", snap.HUD.Next[0])
	// Output:
	// piece_spawned I
	// piece_locked I
	// piece_spawned O
	// locked drawables: 4
	// full rewrite: true
	// next: T
}

// ExampleRotate turns the I piece out of its spawn layout. The result is a
// vertical bar in the third column of its bounding box.
func ExampleRotate() {
	cells := tetris.Rotate(tetris.PieceI, tetris.PieceI.StartPositions(), tetris.Rotation0)
	for _, p := range cells {
		fmt.Println(p.X, p.Y)
	}
	// Output:
	// 5 22
	// 5 21
	// 5 20
	// 5 19
}

// ExampleClearFullRows clears two full rows. The single cell above them drops by
// two rows.
func ExampleClearFullRows() {
	var board tetris.Board
	store := tetris.NewPieceStore()
	store.Insert(tetris.PieceI, row(0, span(0, 9)...))
	store.Insert(tetris.PieceI, row(1, span(0, 9)...))
	store.Insert(tetris.PieceT, row(2, 4))
	tetris.MergeStore(&board, store)

	cleared := tetris.ClearFullRows(&board, store, tetris.ClearClassic)

	fmt.Println("cleared:", cleared)
	fmt.Println("pieces:", store.Len())
	fmt.Println("occupied (4,0):", board.Occupied(tetris.Position{X: 4, Y: 0}))
	// Output:
	// cleared: 2
	// pieces: 1
	// occupied (4,0): true
}

// ExampleScoreState shows the level goal being reached by a four row clear
func ExampleScoreState() {
	var score tetris.ScoreState
	leveled := score.Increase(4)
	fmt.Println(leveled, score.Level, score.Score, score.Goal())
	// Output:
	// true 1 0 10
}
