package vdf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Norgate-AV/scb/internal/answers"
)

func TestFileNames(t *testing.T) {
	assert.Equal(t, "app_build_123.vdf", AppFileName(123))
	assert.Equal(t, "depot_build_10.vdf", DepotFileName(10))
}

func TestRenderApp(t *testing.T) {
	a := answers.AnswerSet{
		AppID:       123,
		Description: "nightly",
		Branch:      "beta",
		Depots:      answers.Depots{Windows: 10, Linux: 11},
	}

	want := "\"appbuild\"\n" +
		"{\n" +
		"\t\"appid\"\t\"123\"\n" +
		"\t\"desc\"\t\"nightly\"\n" +
		"\t\"buildoutput\"\t\"../output/\"\n" +
		"\t\"contentroot\"\t\"../content/\"\n" +
		"\t\"setlive\"\t\"beta\"\n" +
		"\t\"preview\"\t\"0\"\n" +
		"\t\"local\"\t\"\"\n" +
		"\n" +
		"\t\"depots\"\n" +
		"\t{\n" +
		"\t\t\"10\"\t\"depot_build_10.vdf\"\n" +
		"\t\t\"11\"\t\"depot_build_11.vdf\"\n" +
		"\t}\n" +
		"}\n"

	assert.Equal(t, want, RenderApp(a))
}

func TestRenderApp_DepotOrder(t *testing.T) {
	tests := []struct {
		name   string
		depots answers.Depots
		want   []string
	}{
		{
			name:   "windows only",
			depots: answers.Depots{Windows: 1},
			want:   []string{`"1"	"depot_build_1.vdf"`},
		},
		{
			name:   "macos only",
			depots: answers.Depots{MacOS: 2},
			want:   []string{`"2"	"depot_build_2.vdf"`},
		},
		{
			name:   "all platforms",
			depots: answers.Depots{Linux: 30, MacOS: 20, Windows: 10},
			want: []string{
				`"10"	"depot_build_10.vdf"`,
				`"20"	"depot_build_20.vdf"`,
				`"30"	"depot_build_30.vdf"`,
			},
		},
		{
			name:   "macos and linux",
			depots: answers.Depots{Linux: 5, MacOS: 9},
			want: []string{
				`"9"	"depot_build_9.vdf"`,
				`"5"	"depot_build_5.vdf"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderApp(answers.AnswerSet{AppID: 1, Branch: "beta", Depots: tt.depots})
			assert.Equal(t, tt.want, depotLines(out))
		})
	}
}

func TestRenderApp_EscapesValues(t *testing.T) {
	out := RenderApp(answers.AnswerSet{
		AppID:       1,
		Description: `the "big" C:\ build`,
		Branch:      "beta",
		Depots:      answers.Depots{Windows: 2},
	})

	assert.Contains(t, out, "\t\"desc\"\t\"the \\\"big\\\" C:\\\\ build\"\n")
}

func TestRenderDepot(t *testing.T) {
	want := "\"DepotBuildConfig\"\n" +
		"{\n" +
		"\t\"DepotID\"\t\"11\"\n" +
		"\n" +
		"\t\"FileMapping\"\n" +
		"\t{\n" +
		"\t\t\"LocalPath\"\t\"./linux/*\"\n" +
		"\t\t\"DepotPath\"\t\".\"\n" +
		"\t\t\"recursive\"\t\"1\"\n" +
		"\t}\n" +
		"\n" +
		"\t\"FileExclusion\"\t\"*.pdb\"\n" +
		"}\n"

	assert.Equal(t, want, RenderDepot(answers.Depot{ID: 11, Platform: answers.Linux}))
}

func TestRenderDepot_LocalPathPerPlatform(t *testing.T) {
	for _, p := range answers.Platforms {
		out := RenderDepot(answers.Depot{ID: 1, Platform: p})
		assert.Contains(t, out, "\"LocalPath\"\t\"./"+string(p)+"/*\"")
	}
}

// depotLines returns the trimmed lines inside the "depots" block
func depotLines(app string) []string {
	_, rest, _ := strings.Cut(app, "\"depots\"\n\t{\n")
	block, _, _ := strings.Cut(rest, "\t}\n")

	var lines []string
	for _, line := range strings.Split(strings.TrimRight(block, "\n"), "\n") {
		lines = append(lines, strings.TrimSpace(line))
	}

	return lines
}
