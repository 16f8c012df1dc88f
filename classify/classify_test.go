package classify_test

import (
	"testing"

	"github.com/routeloop/engine/classify"
)

func TestWalkable_PrimarySet(t *testing.T) {
	c := classify.New(classify.DefaultConfig())
	r := c.Classify(classify.Tags{Highway: "footway"})
	if !r.Walkable {
		t.Fatalf("expected footway to be walkable")
	}
}

func TestWalkable_ExcludedAlwaysRejects(t *testing.T) {
	cfg := classify.DefaultConfig()
	cfg.IncludeSecondary = true
	c := classify.New(cfg)
	r := c.Classify(classify.Tags{Highway: "motorway"})
	if r.Walkable {
		t.Fatalf("expected motorway to be rejected regardless of IncludeSecondary")
	}
}

func TestWalkable_SecondaryRequiresOptIn(t *testing.T) {
	c := classify.New(classify.DefaultConfig()) // IncludeSecondary: false
	r := c.Classify(classify.Tags{Highway: "residential"})
	if r.Walkable {
		t.Fatalf("expected residential to be rejected without opt-in")
	}

	cfg := classify.DefaultConfig()
	cfg.IncludeSecondary = true
	c2 := classify.New(cfg)
	r2 := c2.Classify(classify.Tags{Highway: "residential"})
	if !r2.Walkable {
		t.Fatalf("expected residential to be accepted with opt-in")
	}
}

func TestWalkable_NoHighwayTag(t *testing.T) {
	c := classify.New(classify.DefaultConfig())
	r := c.Classify(classify.Tags{})
	if r.Walkable {
		t.Fatalf("expected a way without a highway tag to be rejected")
	}
}

func TestSurfaceClass(t *testing.T) {
	c := classify.New(classify.DefaultConfig())

	tests := []struct {
		surface string
		want    classify.Surface
	}{
		{"asphalt", classify.SurfacePaved},
		{"gravel", classify.SurfaceUnpaved},
		{"", classify.SurfaceMixed},
		{"cobblestone-unknown-tag", classify.SurfaceMixed},
	}
	for _, tt := range tests {
		got := c.SurfaceClass(classify.Tags{Surface: tt.surface})
		if got != tt.want {
			t.Fatalf("SurfaceClass(%q) = %v, want %v", tt.surface, got, tt.want)
		}
	}
}

func TestDifficultyClass_DefaultsMedium(t *testing.T) {
	c := classify.New(classify.DefaultConfig())
	got := c.DifficultyClass(classify.Tags{}, classify.SurfaceMixed)
	if got != classify.DifficultyMedium {
		t.Fatalf("expected default DifficultyMedium, got %v", got)
	}
}

func TestQualityScore_InRange(t *testing.T) {
	c := classify.New(classify.DefaultConfig())
	r := c.Classify(classify.Tags{Highway: "footway", Surface: "asphalt", Name: "Riverside Path"})
	if r.Quality < 0 || r.Quality > 100 {
		t.Fatalf("quality score out of [0,100]: %v", r.Quality)
	}
}

func TestQualityScore_DangerousLowersScore(t *testing.T) {
	cfg := classify.DefaultConfig()
	cfg.IncludeSecondary = true
	c := classify.New(cfg)

	safe := c.QualityScore(classify.Tags{Highway: "footway"}, classify.SurfacePaved)
	dangerousTags := classify.Tags{Highway: "motorway"}
	dangerous := c.QualityScore(dangerousTags, classify.SurfacePaved)

	if dangerous >= safe {
		t.Fatalf("expected dangerous highway to score lower: dangerous=%v safe=%v", dangerous, safe)
	}
}

func TestClassify_Idempotent(t *testing.T) {
	c := classify.New(classify.DefaultConfig())
	tags := classify.Tags{Highway: "path", Surface: "gravel", Name: "Forest Loop"}

	r1 := c.Classify(tags)
	r2 := c.Classify(tags)

	if r1 != r2 {
		t.Fatalf("expected identical classification on repeated calls, got %+v vs %+v", r1, r2)
	}
}

func TestParse_MissingKeysAreEmpty(t *testing.T) {
	tags := classify.Parse(map[string]string{"highway": "path"})
	if tags.Highway != "path" {
		t.Fatalf("expected highway=path, got %q", tags.Highway)
	}
	if tags.Surface != "" {
		t.Fatalf("expected empty surface, got %q", tags.Surface)
	}
}
