// Package logtail reads the end of the application log and decodes its
// zerolog JSON lines for display.
//
// Read keeps a ring buffer of maxLines entries, so only one pass over the
// file is needed and memory stays proportional to the number of lines
// requested. A missing file is not an error; the log may not exist until the
// first navigation is written.
//
// ParseLine understands the fields the logging package writes: time, level,
// message and the Route field attached by the router. Anything that is not a
// JSON object comes back as a message-only Record.
package logtail
