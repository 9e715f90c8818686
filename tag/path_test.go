package tag

import (
	"errors"
	"testing"
)

func pathTree() *Node {
	root := NewRoot("")
	level := NewNode("Level", NewCompound())
	pos, _ := NewList(DoubleType, FromDouble(1), FromDouble(2), FromDouble(3))
	level.Compound.Add(NewNode("Pos", pos))
	level.Compound.Add(NewNode("my name", MustString("x")))
	root.Compound.Add(level)
	return root
}

func TestGetPath(t *testing.T) {
	root := pathTree()
	tests := []struct {
		path    string
		want    Type
		wantErr bool
	}{
		{path: "", want: CompoundType},
		{path: ".", want: CompoundType},
		{path: "Level", want: CompoundType},
		{path: "Level.Pos", want: ListType},
		{path: "Level.Pos[2]", want: DoubleType},
		{path: `Level."my name"`, want: StringType},
		{path: "Level.Pos[3]", wantErr: true},
		{path: "Level.nope", wantErr: true},
		{path: "Level[0]", wantErr: true},
		{path: "Level.Pos.x", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			n, err := root.GetPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetPath() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrNotFound) {
					t.Errorf("%v is not ErrNotFound", err)
				}
				return
			}
			if n.Type != tt.want {
				t.Errorf("got %s, want %s", n.Type, tt.want)
			}
		})
	}
}
