package handler

import (
	"errors"
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"votum-api/internal/logic"
	"votum-api/internal/svc"
	"votum-api/internal/types"
	"votum-api/pkg/brief"
)

// GenerateHandler is the single request boundary: every failure below is
// converted into the uniform {error} shape here and nowhere else.
func GenerateHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.GenerateRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.WriteJson(w, http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
			return
		}

		l := logic.NewGenerateLogic(r.Context(), svcCtx)
		resp, err := l.Generate(&req)
		if err != nil {
			var verr *brief.ValidationError
			if errors.As(err, &verr) {
				httpx.WriteJson(w, http.StatusBadRequest, types.ErrorResponse{Error: verr.Error()})
				return
			}
			httpx.WriteJson(w, http.StatusBadGateway, types.ErrorResponse{Error: err.Error()})
			return
		}

		httpx.OkJson(w, resp)
	}
}
