// Package cli implements storectl, an interactive inspector for the local
// record store. It reads one command per line:
//
//	help                               show commands
//	id                                 print the store UUID and path
//	nodes                              list offline nodes
//	node <path>                        show one offline node
//	rmnode <path>                      remove one offline node
//	clearnodes                         remove every offline node
//	user <handle>                      show a cached user
//	adduser                            insert a user (prompts for fields)
//	setname <handle> first|last|email <value>
//	draft <chatid>                     show a chat draft
//	setdraft <chatid> [text...]        set a chat draft; no text clears it
//	exit | quit                        leave
//
// Handles and chat ids accept decimal or 0x-prefixed hex. The prompt is only
// printed when stdin is a terminal.
package cli
