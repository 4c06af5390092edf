// Package server hosts the debloater controller for remote clients over
// WebSocket.
//
// One runtime loop is shared by every client. Each render is broadcast as
//
//	{"type":"render","tree":{...}}
//
// and clients press buttons by naming them:
//
//	{"type":"event","name":"navigate_about"}
//	{"type":"event","name":"set_query","query":"tier:recommended"}
//	{"type":"event","name":"move_cursor","delta":1}
//
// Names other than set_query and move_cursor are node IDs from the latest
// tree; a name that is not on screen gets an error reply.
//
// # Usage Example
//
//	loop := runtime.NewLoop(deps)
//	go loop.Run(ctx)
//
//	srv, err := server.New(&server.Config{Addr: ":7777", Advertise: true}, loop)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := srv.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// Each client runs a read pump and a write pump. Broadcasts never block the
// loop: a client whose buffer is full is disconnected.
package server
