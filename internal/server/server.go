// Package server exposes the map art pipeline over HTTP.
package server

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/pkg/errors"

	mapart "github.com/AK1089/minecraftMapArt"
	"github.com/AK1089/minecraftMapArt/internal/store"
	"github.com/AK1089/minecraftMapArt/utils"
)

// Uploader stores a script and returns its key.
type Uploader interface {
	Upload(text string) (string, error)
}

// Resolver maps a player name to a UUID, or a placeholder when unknown.
type Resolver interface {
	UUID(username string) string
}

type Options struct {
	BodyLimit int
	Logger    *slog.Logger
	Store     store.Recorder
	Palette   *mapart.Palette
}

type Server struct {
	app      *fiber.App
	paste    Uploader
	profiles Resolver
	store    store.Recorder
	palette  *mapart.Palette
	log      *slog.Logger
}

func New(paste Uploader, profiles Resolver, opt Options) *Server {
	if opt.Logger == nil {
		opt.Logger = slog.Default()
	}
	if opt.Store == nil {
		opt.Store = store.Nop{}
	}
	if opt.Palette == nil {
		opt.Palette = mapart.Reference
	}
	if opt.BodyLimit <= 0 {
		opt.BodyLimit = 8 << 20
	}
	s := &Server{
		paste:    paste,
		profiles: profiles,
		store:    opt.Store,
		palette:  opt.Palette,
		log:      opt.Logger,
	}

	app := fiber.New(fiber.Config{
		BodyLimit:             opt.BodyLimit,
		DisableStartupMessage: true,
	})
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(indexPage)
	})
	app.Get("/api/palette", s.handlePalette)
	app.Post("/api/convert", s.handleConvert)
	app.Get("/api/history", s.handleHistory)
	app.Post("/process-text", s.handleProcessText)

	s.app = app
	return s
}

func (s *Server) App() *fiber.App { return s.app }

func (s *Server) Listen(addr string) error {
	s.log.Info("server starting", "addr", addr)
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

type paletteEntry struct {
	Label string   `json:"label"`
	Hex   string   `json:"hex"`
	RGB   [3]uint8 `json:"rgb"`
}

func (s *Server) handlePalette(c *fiber.Ctx) error {
	entries := s.palette.Entries()
	out := make([]paletteEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, paletteEntry{Label: e.Label, Hex: e.Hex(), RGB: [3]uint8{e.RGB.R, e.RGB.G, e.RGB.B}})
	}
	return c.JSON(fiber.Map{"transparent": mapart.Transparent, "blocks": out})
}

type convertResponse struct {
	Name        string  `json:"name"`
	Base        string  `json:"base"`
	Transparent bool    `json:"transparent"`
	Operations  int     `json:"operations"`
	Script      string  `json:"script"`
	Preview     string  `json:"preview"`
	MeanError   float64 `json:"meanError"`
	Key         string  `json:"key,omitempty"`
	UUID        string  `json:"uuid,omitempty"`
	Command     string  `json:"command,omitempty"`
}

// handleConvert takes a multipart form with an "image" file and optional
// base, name, username, upload, filter, blur, contrast, saturation and
// method fields.
func (s *Server) handleConvert(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Please select an image to upload."})
	}
	f, err := fh.Open()
	if err != nil {
		s.log.Error("opening upload", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot read uploaded file"})
	}
	img, err := utils.DecodeImage(f)
	f.Close()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unsupported or corrupt image"})
	}

	sampleOpt, method, err := formSampleOptions(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	pix := utils.Sample(img, sampleOpt)

	name := c.FormValue("name")
	if name == "" {
		name = fh.Filename
	}
	opt := mapart.Options{
		Base: utils.ResolveBase(c.FormValue("base", mapart.DefaultBase), pix.Image, s.palette, method),
		Name: mapart.ScriptName(name),
	}
	b := mapart.NewBuilder(pix.Data, pix.Channels, s.palette)
	script := b.Build(opt)

	preview, err := utils.DataURL(b.Preview(2))
	if err != nil {
		s.log.Error("encoding preview", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred"})
	}
	res := convertResponse{
		Name:        script.Name,
		Base:        script.Base,
		Transparent: script.Transparent,
		Operations:  script.Ops,
		Script:      script.Text,
		Preview:     preview,
		MeanError:   b.Report().MeanError,
	}

	if upload, _ := strconv.ParseBool(c.FormValue("upload")); upload {
		key, err := s.paste.Upload(script.Text)
		if err != nil {
			s.log.Warn("paste upload failed", "name", script.Name, "error", err)
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": errors.Cause(err).Error()})
		}
		res.Key = key
		res.UUID = s.profiles.UUID(c.FormValue("username"))
		res.Command = mapart.ImportCommand(key, res.UUID, script.Name)
	}

	s.record(c.UserContext(), script, res.Key, res.UUID)
	return c.JSON(res)
}

func formSampleOptions(c *fiber.Ctx) (utils.SampleOptions, utils.PaletteMethod, error) {
	opt := utils.DefaultSampleOptions()
	filter, err := utils.ParseFilter(c.FormValue("filter"))
	if err != nil {
		return opt, 0, err
	}
	opt.Filter = filter
	for field, dst := range map[string]*float32{
		"blur":       &opt.Blur,
		"contrast":   &opt.Contrast,
		"saturation": &opt.Saturation,
	} {
		v := c.FormValue(field)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return opt, 0, errors.Errorf("invalid %s %q", field, v)
		}
		*dst = float32(f)
	}
	method, err := utils.ParsePaletteMethod(c.FormValue("method"))
	return opt, method, err
}

type processTextRequest struct {
	Username string `json:"username"`
	Text     string `json:"text"`
}

// handleProcessText uploads an already generated script and resolves the
// player's UUID for the import command.
func (s *Server) handleProcessText(c *fiber.Ctx) error {
	var req processTextRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse request body"})
	}
	key, err := s.paste.Upload(req.Text)
	if err != nil {
		s.log.Error("processing text", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred"})
	}
	return c.JSON(fiber.Map{"key": key, "uuid": s.profiles.UUID(req.Username)})
}

func (s *Server) handleHistory(c *fiber.Ctx) error {
	limit := int64(c.QueryInt("limit", 20))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	recent, err := s.store.Recent(c.UserContext(), limit)
	if err != nil {
		s.log.Error("reading history", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read history"})
	}
	if recent == nil {
		recent = []store.Conversion{}
	}
	return c.JSON(recent)
}

func (s *Server) record(ctx context.Context, script *mapart.Script, key, uuid string) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	conv := &store.Conversion{
		Name:        script.Name,
		Base:        script.Base,
		Transparent: script.Transparent,
		Ops:         script.Ops,
		Key:         key,
		UUID:        uuid,
	}
	if err := s.store.Record(ctx, conv, script.Text); err != nil {
		s.log.Warn("recording conversion", "name", script.Name, "error", err)
	}
}
