package workspace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/syncthing/notify"
)

// Watch re-indexes files under root as they change on disk, until ctx is
// done.
func (index *Index) Watch(ctx context.Context, root string) error {
	// Buffered so that bursts of events are not dropped while a file is
	// being indexed.
	events := make(chan notify.EventInfo, 64)

	err := notify.Watch(
		filepath.Join(root, "..."),
		events,
		notify.Create,
		notify.Write,
		notify.Remove,
		notify.Rename)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", root, err)
	}
	defer notify.Stop(events)

	log.Infof("watching %s", root)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event := <-events:
			index.handleEvent(ctx, event.Path(), event.Event())
		}
	}
}

func (index *Index) handleEvent(
	ctx context.Context,
	path string,
	event notify.Event,
) {
	if _, ok := index.cfg.GrammarForPath(path); !ok {
		return
	}

	uri := URIFromPath(path)
	if index.isOpen(uri) {
		return
	}

	switch event {
	case notify.Remove, notify.Rename:
		_, err := os.Stat(path)
		if err != nil {
			log.Debugf("removing %s", uri)
			index.removeClosed(uri)
			return
		}
	}

	err := index.IndexFile(ctx, path)
	if err != nil {
		log.Warningf("failed to reindex: %s", err)
		index.removeClosed(uri)
	}
}
