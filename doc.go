// Package rfb implements the server side of the Remote Framebuffer (RFB)
// protocol — RFC 6143, the wire protocol underlying VNC — for exactly one
// connection at a time: version and security handshake, client-init/
// server-init, and a request/response message loop against an already
// connected byte stream.
//
// Acquiring the stream (TCP listener, TLS, proxying), sourcing framebuffer
// pixels, and process-level configuration are left to the host application;
// this package only speaks the wire protocol.
package rfb
