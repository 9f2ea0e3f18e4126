package gbcam

import (
	"context"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TileExt is the extension used for developed pictures written to disk.
const TileExt = ".2bpp"

func isCapture(file string) bool {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".bin", ".gif", ".jpeg", ".jpg", ".png":
		return true
	}
	return false
}

func (c *Camera) findCaptures(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories
			if info.Name()[0] == '.' && file != base {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !info.Mode().IsRegular() || !isCapture(file) {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (c *Camera) developWorker(ctx context.Context, in <-chan string, r *Registers) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			id, b, err := c.DevelopFile(file, r)
			if err != nil {
				errc <- err
				return
			}

			if id != "" {
				c.logger.Printf("Stored \"%s\" as %s\n", file, id)
				continue
			}

			out := strings.TrimSuffix(file, filepath.Ext(file)) + TileExt
			if err := ioutil.WriteFile(out, b, 0644); err != nil {
				errc <- err
				return
			}
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Batch develops every capture found under path with the same registers
// using the given number of workers. Pictures are stored in the archive if
// the Camera has one, otherwise they are written next to each capture with
// the TileExt extension.
func (c *Camera) Batch(path string, r *Registers, workers int) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	if workers < 1 {
		workers = 1
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := c.findCaptures(ctx, dir)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < workers; i++ {
		errc, err := c.developWorker(ctx, files, r)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}
