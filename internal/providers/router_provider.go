package providers

import (
	"net/http"

	"bevlog/internal/structures"
)

type RouterProviderInterface interface {
	Get(url string, handler http.Handler)
	Post(url string, handler http.Handler)
	Delete(url string, handler http.Handler)
	GetRoutes() []structures.Route
}

// RouterProvider collects method-scoped handlers and folds them into one
// dispatching handler per url, so a path can serve GET and POST without
// duplicate mux registrations.
type RouterProvider struct {
	order    []string
	handlers map[string]map[string]http.Handler
}

func (rp *RouterProvider) add(method, url string, handler http.Handler) {
	if _, ok := rp.handlers[url]; !ok {
		rp.order = append(rp.order, url)
		rp.handlers[url] = make(map[string]http.Handler)
	}
	rp.handlers[url][method] = handler
}

func (rp *RouterProvider) Get(url string, handler http.Handler) {
	rp.add(http.MethodGet, url, handler)
}

func (rp *RouterProvider) Post(url string, handler http.Handler) {
	rp.add(http.MethodPost, url, handler)
}

func (rp *RouterProvider) Delete(url string, handler http.Handler) {
	rp.add(http.MethodDelete, url, handler)
}

func (rp *RouterProvider) GetRoutes() []structures.Route {
	routes := make([]structures.Route, 0, len(rp.order))
	for _, url := range rp.order {
		routes = append(routes, structures.Route{
			Url:     url,
			Handler: methodDispatcher(rp.handlers[url]),
		})
	}
	return routes
}

func NewRouterProvider() RouterProviderInterface {
	return &RouterProvider{
		handlers: make(map[string]map[string]http.Handler),
	}
}

func methodDispatcher(byMethod map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler, ok := byMethod[r.Method]
		if !ok {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		handler.ServeHTTP(w, r)
	})
}
