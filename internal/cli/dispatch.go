// Package cli maps line-oriented commands onto address-book operations.
// The core never sees command text; Resolve is the only place that parses
// it, and every handler calls exactly one public book/store operation.
package cli

import (
	"sort"
	"strings"
)

// Operation is one executable command. It returns the user-facing output;
// errors are rendered by Message.
type Operation func(s *Session, args []string) (string, error)

type command struct {
	keyword string
	op      Operation
}

// commandTable is the static keyword table, sorted longest-first at init
// so that multi-word keywords ("set birthday", "export xlsx") win over
// their prefixes.
var commandTable = []command{
	{"hello", opHello},
	{"add", opAdd},
	{"change", opChange},
	{"remove phone", opRemovePhone},
	{"remove", opRemove},
	{"rename", opRename},
	{"phones of", opPhones},
	{"set birthday", opSetBirthday},
	{"birthday of", opBirthdayOf},
	{"birthdays", opBirthdays},
	{"show all", opShowAll},
	{"search", opSearch},
	{"save", opSave},
	{"load", opLoad},
	{"export xlsx", opExportXLSX},
	{"import xlsx", opImportXLSX},
	{"export", opExport},
	{"import", opImport},
	{"books", opBooks},
	{"diff", opDiff},
	{"help", opHelp},
	{"good bye", opGoodbye},
	{"close", opGoodbye},
	{"exit", opGoodbye},
}

func init() {
	sort.SliceStable(commandTable, func(i, j int) bool {
		return len(commandTable[i].keyword) > len(commandTable[j].keyword)
	})
}

// Resolve looks the line up in the command table and splits off the
// arguments. Unknown input resolves to the undefined operation.
func Resolve(line string) (Operation, []string) {
	line = strings.TrimSpace(line)
	lower := strings.ToLower(line)
	for _, c := range commandTable {
		if lower == c.keyword || strings.HasPrefix(lower, c.keyword+" ") {
			return c.op, strings.Fields(line[len(c.keyword):])
		}
	}
	return opUndefined, nil
}
