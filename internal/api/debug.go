package api

import (
	"fmt"
	"net/http"
	"text/tabwriter"

	"tailscale.com/tsweb"
)

// AttachAdminRoutes mounts the loopback-only /debug/ pages.
func (s *Server) AttachAdminRoutes(mux *http.ServeMux) {
	debug := tsweb.Debugger(mux)

	debug.Handle("series", "Current snapshot series and its analytics", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		series := s.player.Series()
		if series == nil {
			fmt.Fprintln(w, "no series loaded")
			return
		}
		sum, _ := s.player.Summary()

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "id\t%s\n", series.ID())
		fmt.Fprintf(tw, "loaded_at\t%s\n", series.LoadedAt().Format("2006-01-02T15:04:05Z07:00"))
		fmt.Fprintf(tw, "span\t%g .. %g\n", series.Span().Start, series.Span().End)
		fmt.Fprintf(tw, "frames\t%d\n", series.Len())
		fmt.Fprintf(tw, "data_path\t%s\n", s.cfg.GetDataPath())
		fmt.Fprintf(tw, "eccentricity\t%.6f\n", sum.Eccentricity)
		if sum.VelocityOK {
			fmt.Fprintf(tw, "velocity_km_s\tavg=%.4f max=%.4f min=%.4f samples=%d skipped=%d\n",
				sum.Velocity.Average, sum.Velocity.Max, sum.Velocity.Min, sum.Velocity.Samples, sum.Velocity.Skipped)
		} else {
			fmt.Fprintf(tw, "velocity_km_s\tinsufficient data\n")
		}
		tw.Flush()
	}))

	debug.HandleSilent("reload", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		sum, err := s.Reload()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		fmt.Fprintf(w, "reloaded series %s (%d frames)\n", sum.SeriesID, sum.Frames)
	}))
}
