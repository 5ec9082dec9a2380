package cart

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/gargchanchal/TEST-ECO/internal/catalog"
	"github.com/gargchanchal/TEST-ECO/internal/session"
	"github.com/gargchanchal/TEST-ECO/pkg/kit"
)

type Server struct {
	Catalog catalog.Store
	Carts   *Store
	Log     *zap.Logger
}

// Routes is mounted at /cart, below the session middleware.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/", s.view)
	r.Post("/add", s.add)
	r.Post("/update", s.update)
	return r
}

func (s *Server) view(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusInternalServerError, "no session", nil)
		return
	}

	c := s.Carts.GetOrCreate(sess.ID)
	c.Recalc()
	kit.WriteJSON(w, http.StatusOK, c)
}

func (s *Server) add(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusInternalServerError, "no session", nil)
		return
	}

	if err := r.ParseForm(); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad form", nil)
		return
	}

	id := strings.TrimSpace(r.PostForm.Get("productId"))
	p, found, err := s.Catalog.Get(r.Context(), id)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("catalog get failed", zap.Error(err), zap.String("id", id))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	if !found {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return
	}

	c := s.Carts.GetOrCreate(sess.ID)
	c.Add(p, ParseQuantity(r.PostForm.Get("quantity"), 1))
	s.Carts.Save(sess.ID, c)

	kit.SeeOther(w, r, "/cart")
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusInternalServerError, "no session", nil)
		return
	}

	if err := r.ParseForm(); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad form", nil)
		return
	}

	c := s.Carts.GetOrCreate(sess.ID)
	c.Apply(strings.TrimSpace(r.PostForm.Get("remove")), quantityFields(r.PostForm))
	s.Carts.Save(sess.ID, c)

	kit.SeeOther(w, r, "/cart")
}

// quantityFields collects quantities[<productId>] fields, the shape an
// urlencoded cart form submits its quantity map with.
func quantityFields(form url.Values) map[string]string {
	out := make(map[string]string)
	for key, vals := range form {
		if len(vals) == 0 {
			continue
		}
		if id, ok := quantityKey(key); ok {
			out[id] = vals[0]
		}
	}
	return out
}

func quantityKey(key string) (string, bool) {
	if !strings.HasPrefix(key, "quantities[") || !strings.HasSuffix(key, "]") {
		return "", false
	}
	id := key[len("quantities[") : len(key)-1]
	return id, id != ""
}
