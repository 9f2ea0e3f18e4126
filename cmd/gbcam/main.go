package main

import (
	"bytes"
	"fmt"
	"image/png"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bodgit/gbcam"
	"github.com/bodgit/gbcam/sram"
	"github.com/bodgit/gbcam/tile"
	"github.com/urfave/cli/v2"
)

const defaultDB = "gbcam.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func registerFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "reg0",
			Value: "0x00",
			Usage: "register 0, polarity selection in bits 1-2",
		},
		&cli.StringFlag{
			Name:  "reg1",
			Value: "0x00",
			Usage: "register 1, N bit and VH bits",
		},
		&cli.StringFlag{
			Name:  "exposure",
			Value: "0x0100",
			Usage: "exposure count held in registers 2 and 3",
		},
		&cli.StringFlag{
			Name:  "reg4",
			Value: "0x00",
			Usage: "register 4, E3 bit, edge gain, invert bit",
		},
		&cli.StringFlag{
			Name:  "reg5",
			Value: "0x00",
			Usage: "register 5",
		},
		&cli.StringFlag{
			Name:  "matrix",
			Value: "low",
			Usage: "dither matrix, one of low, high, flat-low or flat-high",
		},
	}
}

func parseByte(c *cli.Context, name string) (byte, error) {
	v, err := strconv.ParseUint(c.String(name), 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return byte(v), nil
}

func registers(c *cli.Context) (*gbcam.Registers, error) {
	r := gbcam.DefaultRegisters()

	for i, name := range map[int]string{0: "reg0", 1: "reg1", 4: "reg4", 5: "reg5"} {
		v, err := parseByte(c, name)
		if err != nil {
			return nil, err
		}
		r.Reg[i] = v
	}

	e, err := strconv.ParseUint(c.String("exposure"), 0, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid exposure: %w", err)
	}
	r.SetExposure(uint16(e))

	m, ok := gbcam.MatrixByName(c.String("matrix"))
	if !ok {
		return nil, fmt.Errorf("unknown matrix %q", c.String("matrix"))
	}
	r.Matrix = m

	return r, nil
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func newCamera(c *cli.Context, store bool) (*gbcam.Camera, func() error, error) {
	logger := newLogger(c)
	if !store {
		return gbcam.New(nil, logger), func() error { return nil }, nil
	}
	db, err := gbcam.NewCaptureDB(c.String("db"))
	if err != nil {
		return nil, nil, err
	}
	return gbcam.New(db, logger), db.Close, nil
}

// Write the picture b as tile data, a PNG preview and/or an SRAM bank
func writeOutputs(c *cli.Context, b []byte) error {
	if out := c.String("output"); out != "" {
		if err := ioutil.WriteFile(out, b, 0644); err != nil {
			return err
		}
	}

	if out := c.String("png"); out != "" {
		m, err := tile.Decode(bytes.NewReader(b))
		if err != nil {
			return err
		}
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := png.Encode(f, m); err != nil {
			return err
		}
	}

	if out := c.String("sram"); out != "" {
		bank := sram.New()
		if err := bank.SetPicture(b); err != nil {
			return err
		}
		data, err := bank.MarshalBinary()
		if err != nil {
			return err
		}
		if err := ioutil.WriteFile(out, data, 0644); err != nil {
			return err
		}
	}

	return nil
}

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "write tile data to `FILE`",
		},
		&cli.StringFlag{
			Name:  "png",
			Usage: "write a PNG preview to `FILE`",
		},
		&cli.StringFlag{
			Name:  "sram",
			Usage: "write an SRAM bank 0 image to `FILE`",
		},
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "gbcam"
	app.Usage = "Game Boy Camera sensor emulator"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"GBCAM_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to capture archive",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "develop",
			Usage:       "Develop a capture into tile data",
			Description: "FILE is either a raw 128x120 sensor frame or an image which is scaled to fit the sensor",
			ArgsUsage:   "FILE",
			Flags: append(append(registerFlags(), outputFlags()...), &cli.BoolFlag{
				Name:  "store",
				Usage: "store the picture in the capture archive",
			}),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				r, err := registers(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				m, closeFunc, err := newCamera(c, c.Bool("store"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer closeFunc()

				id, b, err := m.DevelopFile(c.Args().First(), r)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				if id != "" {
					fmt.Println(id)
				}

				if err := writeOutputs(c, b); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "batch",
			Usage:       "Develop every capture in a directory",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Flags: append(registerFlags(), &cli.IntFlag{
				Name:    "workers",
				EnvVars: []string{"GBCAM_WORKERS"},
				Value:   10,
				Usage:   "number of concurrent workers",
			}, &cli.BoolFlag{
				Name:  "store",
				Usage: "store pictures in the capture archive instead of beside each capture",
			}),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				r, err := registers(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				m, closeFunc, err := newCamera(c, c.Bool("store"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer closeFunc()

				if err := m.Batch(c.Args().First(), r, c.Int("workers")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "export",
			Usage:       "Export a picture from the capture archive",
			Description: "",
			ArgsUsage:   "ID",
			Flags:       outputFlags(),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, closeFunc, err := newCamera(c, true)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer closeFunc()

				capture, err := m.Capture(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := writeOutputs(c, capture.Tiles); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "list",
			Usage:       "List the capture archive",
			Description: "",
			Action: func(c *cli.Context) error {
				db, err := gbcam.NewCaptureDB(c.String("db"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer db.Close()

				captures, err := db.Captures()
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				for _, capture := range captures {
					fmt.Printf("%s %s %s\n", capture.ID, capture.Registers.String(), capture.Name)
				}

				return nil
			},
		},
		{
			Name:        "encode",
			Usage:       "Encode a 128x112 image as tile data",
			Description: "",
			ArgsUsage:   "FILE",
			Flags:       outputFlags()[:1],
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				out := c.String("output")
				if out == "" {
					file := c.Args().First()
					out = strings.TrimSuffix(file, filepath.Ext(file)) + gbcam.TileExt
				}

				if err := encodeFile(c.Args().First(), out); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
