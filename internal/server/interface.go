/*
Package server implements msgpack IPC for the trie dictionary.

Clients write a stream of msgpack encoded requests to the server's input and
read one response per request from its output, in order. The first message the
server writes is a ready notice:

	{"id": "", "ok": true, "status": "ready"}

A request names an operation and its argument:

	{"id": "req_001", "op": "complete", "w": "cat", "l": 10}

and the response echoes the id, the result and the time taken in microseconds:

	{"id": "req_001", "ok": true, "s": ["catalog", "cats"], "c": 2, "t": 12}

Supported operations are search, insert, delete, complete, all, spell, len and
health. Failed lookups are not errors: search, insert and delete report them
through "ok". The "e" field is only set for malformed requests.
*/
package server

// Operation names accepted in Request.Op.
const (
	OpSearch   = "search"
	OpInsert   = "insert"
	OpDelete   = "delete"
	OpComplete = "complete"
	OpAll      = "all"
	OpSpell    = "spell"
	OpLen      = "len"
	OpHealth   = "health"
)

// Request is a single dictionary operation.
type Request struct {
	ID    string `msgpack:"id"`
	Op    string `msgpack:"op"`
	Word  string `msgpack:"w,omitempty"`
	Limit int    `msgpack:"l,omitempty"`
}

// Response answers the Request with the same ID.
type Response struct {
	ID        string   `msgpack:"id"`
	OK        bool     `msgpack:"ok"`
	Status    string   `msgpack:"status,omitempty"`
	Words     []string `msgpack:"s,omitempty"`
	Count     int      `msgpack:"c"`
	Error     string   `msgpack:"e,omitempty"`
	TimeTaken int64    `msgpack:"t"`
}
