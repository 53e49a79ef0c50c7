package cli

// HelpText is markdown; the TUI renders it with glamour, plain mode
// prints it as is.
const HelpText = `# rolodex commands

## Contacts
- ` + "`add <name> <phone>`" + ` — add a contact, or another phone to one
- ` + "`change <name> <old> <new>`" + ` — replace a phone number
- ` + "`remove <name>`" + ` — delete a contact
- ` + "`remove phone <name> <phone>`" + ` — delete one phone
- ` + "`rename <old> <new>`" + ` — re-key a contact under a new name
- ` + "`phones of <name>`" + ` — list a contact's phones
- ` + "`set birthday <name> <DD.MM.YYYY>`" + ` — set the birthday
- ` + "`birthday of <name>`" + ` — birthday and days to the next one
- ` + "`birthdays [days]`" + ` — contacts with a birthday in the next N days

## Listing
- ` + "`show all [page size]`" + ` — paginated listing
- ` + "`search <query>`" + ` — match names, phones or birthdays

## Files
- ` + "`save [book]`" + ` / ` + "`load [book]`" + ` — JSON in the data dir
- ` + "`export [book]`" + ` / ` + "`import [book]`" + ` — CSV
- ` + "`export xlsx [book]`" + ` / ` + "`import xlsx [book]`" + ` — spreadsheet
- ` + "`books`" + ` — list saved books
- ` + "`diff [book]`" + ` — unified diff against the saved file

## Session
- ` + "`hello`" + `, ` + "`help`" + `, ` + "`good bye`" + ` / ` + "`close`" + ` / ` + "`exit`" + `
  (exit saves the default book)
`
