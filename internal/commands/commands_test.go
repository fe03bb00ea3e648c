package commands

import (
	"flag"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		line string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"depth 6", []string{"depth", "6"}},
		{"  load  models/bunny.obj ", []string{"load", "models/bunny.obj"}},
	}
	for _, c := range cases {
		got := Parse(c.line)
		if len(got) != len(c.want) {
			t.Errorf("Parse(%q) = %v, want %v", c.line, got, c.want)
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("Parse(%q)[%d] = %q, want %q", c.line, i, got[i], c.want[i])
			}
		}
	}
}

func TestExecute(t *testing.T) {
	reg := NewRegistry()

	var gotArgs []string
	reg.Register("depth", "set octree depth", nil, func(args []string) error {
		gotArgs = args
		return nil
	})

	if err := reg.Execute([]string{"depth", "6"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(gotArgs) != 1 || gotArgs[0] != "6" {
		t.Errorf("run args = %v, want [6]", gotArgs)
	}

	if err := reg.Execute([]string{"nope"}); err == nil {
		t.Error("unknown command should error")
	}
	if err := reg.Execute(nil); err == nil {
		t.Error("empty command should error")
	}
}

func TestExecuteWithFlags(t *testing.T) {
	reg := NewRegistry()

	fs := flag.NewFlagSet("grid", flag.ContinueOnError)
	visible := fs.Bool("visible", true, "")
	var ran bool
	reg.Register("grid", "toggle the grid", fs, func(args []string) error {
		ran = true
		return nil
	})

	if err := reg.Execute([]string{"grid", "-visible=false"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !ran {
		t.Fatal("command did not run")
	}
	if *visible {
		t.Error("flag -visible=false not applied")
	}
}

func TestUsagesSorted(t *testing.T) {
	reg := NewRegistry()
	reg.Register("size", "set voxel edge length", nil, func([]string) error { return nil })
	reg.Register("depth", "set octree depth", nil, func([]string) error { return nil })

	usages := reg.Usages()
	if len(usages) != 2 {
		t.Fatalf("usage count = %d, want 2", len(usages))
	}
	if usages[0] != "depth - set octree depth" || usages[1] != "size - set voxel edge length" {
		t.Errorf("usages = %v", usages)
	}
}
