package profile

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/petswipe/petswipe/internal/app"
	"github.com/petswipe/petswipe/internal/db"
	svcErr "github.com/petswipe/petswipe/internal/errors"
	"github.com/petswipe/petswipe/internal/imaging"
	"github.com/petswipe/petswipe/internal/repository"
	"github.com/petswipe/petswipe/internal/server"
	"github.com/petswipe/petswipe/internal/utils/weburl"
)

// Service implements the profile HTTP API: create/read/update profile
// records plus photo upload and retrieval.
type Service struct {
	appCtx      *app.AppContext
	profileRepo *repository.ProfileRepository
	converter   *imaging.Converter
}

// NewService creates a new profile service with dependencies from AppContext.
func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:      appCtx,
		profileRepo: repository.NewProfileRepository(appCtx.DB),
		converter:   imaging.NewConverter(appCtx.Config.Uploads.Dir, appCtx.Config.Uploads.MaxBytes),
	}
}

// Create handles POST /users.
//
// Multipart form: photo (optional file), city, age, name, gender,
// description. A fresh id is generated; when a photo is attached it is
// ingested under that id before the row is written, so a failed
// conversion leaves no half-created profile behind.
func (s *Service) Create(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()

	var photo *string
	file, header, err := r.FormFile("photo")
	switch {
	case err == nil:
		defer file.Close()
		filename, err := s.converter.Ingest(file, header.Size, id)
		if err != nil {
			s.appCtx.Logger.Error("photo ingestion failed", "profile_id", id, "err", err)
			svcErr.Write(w, mapIngestErr(err), "failed to convert image")
			return
		}
		photo = &filename
	case errors.Is(err, http.ErrMissingFile):
		// profile without a photo is fine
	default:
		svcErr.Write(w, svcErr.BadRequest("invalid multipart payload"), "")
		return
	}

	age, _ := strconv.Atoi(r.FormValue("age"))
	p := db.Profile{
		ID:          id,
		Photo:       photo,
		City:        r.FormValue("city"),
		Age:         age,
		Name:        r.FormValue("name"),
		Gender:      r.FormValue("gender"),
		Description: r.FormValue("description"),
	}

	if err := s.profileRepo.Create(r.Context(), &p); err != nil {
		s.appCtx.Logger.Error("profile create failed", "profile_id", id, "err", err)
		svcErr.Write(w, err, "failed to create user")
		return
	}

	s.appCtx.Logger.Info("profile created", "profile_id", id, "has_photo", photo != nil)
	server.RespondJSON(w, http.StatusCreated, map[string]string{
		"message": "User created successfully",
		"userId":  id,
	})
}

// UploadPhoto handles POST /users/{id}/photo: attach or replace the
// photo. The stored filename is derived from the id, so repeat uploads
// overwrite in place.
func (s *Service) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	file, header, err := r.FormFile("photo")
	if err != nil {
		svcErr.Write(w, svcErr.BadRequest("no photo uploaded"), "")
		return
	}
	defer file.Close()

	filename, err := s.converter.Ingest(file, header.Size, id)
	if err != nil {
		s.appCtx.Logger.Error("photo ingestion failed", "profile_id", id, "err", err)
		svcErr.Write(w, mapIngestErr(err), "failed to convert image")
		return
	}

	if err := s.profileRepo.SetPhoto(r.Context(), id, filename); err != nil {
		svcErr.Write(w, err, "failed to update photo")
		return
	}

	server.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "Photo updated successfully",
	})
}

// GetPhoto handles GET /users/{id}/photo and returns the photo URL.
func (s *Service) GetPhoto(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	p, err := s.profileRepo.GetByID(r.Context(), id)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		svcErr.Write(w, err, "failed to fetch photo")
		return
	}
	if err != nil || p.Photo == nil {
		svcErr.Write(w, svcErr.NotFound("photo not found"), "")
		return
	}

	server.RespondJSON(w, http.StatusOK, map[string]string{
		"photoUrl": weburl.Photo(r, s.appCtx.Config.HTTP.PublicBaseURL, *p.Photo),
	})
}

// Get handles GET /users/{id}. The photo field is rewritten to a
// fully-qualified URL when present.
func (s *Service) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	p, err := s.profileRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			svcErr.Write(w, svcErr.NotFound("user not found"), "")
			return
		}
		svcErr.Write(w, err, "failed to fetch user")
		return
	}

	server.RespondJSON(w, http.StatusOK, withPhotoURL(r, s.appCtx.Config.HTTP.PublicBaseURL, *p))
}

type updateRequest struct {
	City   *string `json:"city"`
	Age    *int    `json:"age"`
	Name   *string `json:"name"`
	Gender *string `json:"gender"`
}

// Update handles PUT /users/{id}: overwrite city, age, name and gender.
// All four fields are required; the photo is never touched here.
func (s *Service) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req updateRequest
	if err := server.DecodeJSON(r, &req); err != nil {
		svcErr.Write(w, svcErr.BadRequest("invalid request payload"), "")
		return
	}
	if req.City == nil || req.Age == nil || req.Name == nil || req.Gender == nil {
		svcErr.Write(w, svcErr.BadRequest("missing parameters: city, age, name and gender are required"), "")
		return
	}

	affected, err := s.profileRepo.UpdateFields(r.Context(), id, *req.City, *req.Age, *req.Name, *req.Gender)
	if err != nil {
		svcErr.Write(w, err, "failed to update user")
		return
	}
	if affected == 0 {
		svcErr.Write(w, svcErr.NotFound("user not found"), "")
		return
	}

	server.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "User updated successfully",
	})
}

// mapIngestErr turns imaging sentinel errors into client errors; other
// ingestion failures stay internal.
func mapIngestErr(err error) error {
	switch {
	case errors.Is(err, imaging.ErrFileTooLarge):
		return svcErr.BadRequest("uploaded file exceeds the 5 MiB limit")
	case errors.Is(err, imaging.ErrUnsupportedFormat):
		return svcErr.BadRequest("unsupported file format, please upload a JPEG or PNG file")
	default:
		return err
	}
}

// withPhotoURL returns a copy of the profile with the photo reference
// rewritten to an absolute URL.
func withPhotoURL(r *http.Request, baseOverride string, p db.Profile) db.Profile {
	if p.Photo != nil {
		url := weburl.Photo(r, baseOverride, *p.Photo)
		p.Photo = &url
	}
	return p
}
