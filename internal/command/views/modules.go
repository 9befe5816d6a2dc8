// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package views

import (
	encJson "encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/planscape/internal/command/arguments"
	"github.com/hashicorp/planscape/internal/tfdiags"
	"github.com/xlab/treeprint"
)

const modulesFormatVersion = "1.0"

// ModuleRecord describes one module observed in a plan: its address and
// the resources declared directly inside it. The root module has the
// empty address.
type ModuleRecord struct {
	Address   string
	Resources []string
}

type Modules interface {
	// Display renders the list of module entries.
	Display(records []ModuleRecord) int

	// Diagnostics renders early diagnostics, resulting from argument parsing.
	Diagnostics(diags tfdiags.Diagnostics)
}

func NewModules(vt arguments.ViewType, view *View) Modules {
	switch vt {
	case arguments.ViewJSON:
		return &ModulesJSON{view: view}
	case arguments.ViewHuman:
		return &ModulesHuman{view: view}
	default:
		panic(fmt.Sprintf("unknown view type %v", vt))
	}
}

type ModulesHuman struct {
	view *View
}

var _ Modules = (*ModulesHuman)(nil)

func (v *ModulesHuman) Display(records []ModuleRecord) int {
	if len(records) == 0 {
		v.view.streams.Println("No resources found in the plan.")
		return 0
	}

	// Sorting by address keeps the output deterministic and creates
	// parent module branches before their children.
	sort.Slice(records, func(i, j int) bool { return records[i].Address < records[j].Address })

	counts := make(map[string]int, len(records))
	for _, rec := range records {
		counts[rec.Address] = len(rec.Resources)
	}

	printRoot := treeprint.New()
	branches := map[string]treeprint.Tree{"": printRoot}
	for _, rec := range records {
		branch := moduleBranch(printRoot, branches, counts, rec.Address)
		for _, addr := range rec.Resources {
			branch.AddNode(addr)
		}
	}

	v.view.streams.Println(fmt.Sprintf("\nModules in the plan:\n%s", printRoot.String()))
	return 0
}

// moduleBranch returns the tree branch for the given module address,
// creating it and any missing parent branches first.
func moduleBranch(tree treeprint.Tree, branches map[string]treeprint.Tree, counts map[string]int, addr string) treeprint.Tree {
	if branch, ok := branches[addr]; ok {
		return branch
	}

	parent := tree
	label := addr
	if i := strings.LastIndex(addr, ".module."); i >= 0 {
		parent = moduleBranch(tree, branches, counts, addr[:i])
		label = addr[i+1:]
	}
	if n := counts[addr]; n > 0 {
		label = fmt.Sprintf("%s (%s)", label, resourceCountLabel(n))
	}

	branch := parent.AddBranch(label)
	branches[addr] = branch
	return branch
}

func (v *ModulesHuman) Diagnostics(diags tfdiags.Diagnostics) {
	v.view.Diagnostics(diags)
}

type ModulesJSON struct {
	view *View
}

var _ Modules = (*ModulesJSON)(nil)

func (v *ModulesJSON) Display(records []ModuleRecord) int {
	sort.Slice(records, func(i, j int) bool { return records[i].Address < records[j].Address })

	recordList := make([]map[string]interface{}, 0, len(records))
	for _, rec := range records {
		recordList = append(recordList, map[string]interface{}{
			"address":   rec.Address,
			"resources": rec.Resources,
		})
	}
	ret := map[string]interface{}{
		"format_version": modulesFormatVersion,
		"modules":        recordList,
	}

	bytes, err := encJson.Marshal(ret)
	if err != nil {
		v.view.streams.Eprintf("error marshalling module records: %v", err)
		return 1
	}

	v.view.streams.Println(string(bytes))
	return 0
}

func (v *ModulesJSON) Diagnostics(diags tfdiags.Diagnostics) {
	v.view.Diagnostics(diags)
}
