package app

// Command is an effect returned by a Program's Update. The zero Command
// does nothing.
type Command[Msg any] struct {
	quit bool
	emit []Msg
}

// None returns the empty command.
func None[Msg any]() Command[Msg] {
	return Command[Msg]{}
}

// Quit ends the loop after the current message. Messages still queued are
// dropped.
func Quit[Msg any]() Command[Msg] {
	return Command[Msg]{quit: true}
}

// Emit enqueues msgs behind everything already waiting, so they are handled
// within the same Flush.
func Emit[Msg any](msgs ...Msg) Command[Msg] {
	return Command[Msg]{emit: append([]Msg(nil), msgs...)}
}

// Batch combines cmds. Emitted messages keep their relative order.
func Batch[Msg any](cmds ...Command[Msg]) Command[Msg] {
	var out Command[Msg]
	for _, c := range cmds {
		out.quit = out.quit || c.quit
		out.emit = append(out.emit, c.emit...)
	}
	return out
}

// IsQuit reports whether c ends the loop.
func (c Command[Msg]) IsQuit() bool {
	return c.quit
}
