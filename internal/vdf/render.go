// Package vdf renders the KeyValues descriptors read by the Steamworks
// content builder. Output is byte-for-byte deterministic for a given answer
// set so rerunning setup with the same input reproduces the same files.
package vdf

import (
	"fmt"
	"strings"

	"github.com/Norgate-AV/scb/internal/answers"
)

// Ext is the extension of every descriptor file
const Ext = ".vdf"

const (
	buildOutput    = "../output/"
	contentRoot    = "../content/"
	excludePattern = "*.pdb"
)

// AppFileName returns the app build descriptor name for appID
func AppFileName(appID uint64) string {
	return fmt.Sprintf("app_build_%d%s", appID, Ext)
}

// DepotFileName returns the depot descriptor name for depotID
func DepotFileName(depotID uint64) string {
	return fmt.Sprintf("depot_build_%d%s", depotID, Ext)
}

// RenderApp renders the app build descriptor
func RenderApp(a answers.AnswerSet) string {
	var depots strings.Builder
	for _, d := range a.Depots.Configured() {
		fmt.Fprintf(&depots, "\t\t%s\t%s\n", quote(fmt.Sprint(d.ID)), quote(DepotFileName(d.ID)))
	}

	var b strings.Builder
	b.WriteString("\"appbuild\"\n{\n")
	fmt.Fprintf(&b, "\t\"appid\"\t%s\n", quote(fmt.Sprint(a.AppID)))
	fmt.Fprintf(&b, "\t\"desc\"\t%s\n", quote(a.Description))
	fmt.Fprintf(&b, "\t\"buildoutput\"\t%s\n", quote(buildOutput))
	fmt.Fprintf(&b, "\t\"contentroot\"\t%s\n", quote(contentRoot))
	fmt.Fprintf(&b, "\t\"setlive\"\t%s\n", quote(a.Branch))
	b.WriteString("\t\"preview\"\t\"0\"\n")
	b.WriteString("\t\"local\"\t\"\"\n")
	b.WriteString("\n")
	b.WriteString("\t\"depots\"\n\t{\n")
	fmt.Fprintf(&b, "\t\t%s\n", strings.TrimSpace(depots.String()))
	b.WriteString("\t}\n}\n")

	return b.String()
}

// RenderDepot renders the depot descriptor of d. The depot maps the
// platform's subtree of the content root and skips debug symbols.
func RenderDepot(d answers.Depot) string {
	var b strings.Builder
	b.WriteString("\"DepotBuildConfig\"\n{\n")
	fmt.Fprintf(&b, "\t\"DepotID\"\t%s\n", quote(fmt.Sprint(d.ID)))
	b.WriteString("\n")
	b.WriteString("\t\"FileMapping\"\n\t{\n")
	fmt.Fprintf(&b, "\t\t\"LocalPath\"\t%s\n", quote("./"+string(d.Platform)+"/*"))
	b.WriteString("\t\t\"DepotPath\"\t\".\"\n")
	b.WriteString("\t\t\"recursive\"\t\"1\"\n")
	b.WriteString("\t}\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "\t\"FileExclusion\"\t%s\n", quote(excludePattern))
	b.WriteString("}\n")

	return b.String()
}

var escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// quote wraps s in double quotes, escaping the characters KeyValues treats specially
func quote(s string) string {
	return `"` + escaper.Replace(s) + `"`
}
