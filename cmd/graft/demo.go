package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/graft-dev/graft/el"
	"github.com/graft-dev/graft/pkg/bind"
	"github.com/graft-dev/graft/pkg/cell"
	"github.com/graft-dev/graft/pkg/dom"
	"github.com/graft-dev/graft/pkg/live"
)

// feedLimit caps the demo event feed length.
const feedLimit = 8

func demoCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Serve a small live view demo",
		Long: `Serves a page whose content is driven by cells on the server.
A ticker appends feed entries once per second; connected browsers
receive the resulting patches over a websocket.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}

func runDemo(addr string) error {
	tick := cell.New(0)
	entries := cell.New([]bind.Child(nil))

	status := cell.Derive(func() string {
		if n := tick.Get(); n != 1 {
			return fmt.Sprintf("%d ticks", n)
		}
		return "1 tick"
	})

	feed := el.Ul(el.Class("feed"))
	bind.Children(feed, entries)

	root := el.Div(
		el.ID("app"),
		el.H1("graft demo"),
		el.P(el.Class("status"), status),
		// Rebuilt on every tick; the previous element is replaced in place.
		func() dom.Node {
			return el.Strong(el.Textf("latest: event %d", tick.Get()))
		},
		feed,
	)

	srv := live.New(root, live.Config{Title: "graft demo"})

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for range ticker.C {
			srv.Update(func() {
				cell.Batch(func() {
					n := tick.Peek() + 1
					tick.Set(n)

					items := append(entries.Peek(), el.Li(el.Textf("event %d", n)))
					if len(items) > feedLimit {
						items = items[len(items)-feedLimit:]
					}
					entries.Set(items)
				})
			})
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(ctx)
	}()

	return srv.Run(addr)
}
