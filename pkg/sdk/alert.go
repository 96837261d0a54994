package sdk

import (
	"context"
	"net/http"
)

// alertImpl implements AlertAPI interface.
// alertImpl 实现 AlertAPI 接口。
type alertImpl struct {
	req Requester
}

func (a *alertImpl) Get(ctx context.Context) (AlertConfig, error) {
	var out AlertConfig
	err := a.req.Do(ctx, http.MethodGet, "/warnalert/alertconfig/query", nil, nil, &out)
	return out, err
}
