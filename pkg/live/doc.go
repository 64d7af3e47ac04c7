// Package live serves a graft tree over HTTP for observation in a browser.
//
// A Server owns a root element and watches it for mutations. Application
// code applies cell updates inside Server.Update; every tree edit the
// update causes is collected and, when the update returns, encoded into a
// single binary patch frame and broadcast to all connected websocket
// clients. A client that connects mid-stream first receives a full HTML
// snapshot, then incremental frames.
//
// The HTTP surface is a chi router: the index page with the embedded
// client, the websocket endpoint, a health check, and prometheus metrics.
package live
