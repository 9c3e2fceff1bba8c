package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/kbukum/inventario/errors"
	"github.com/kbukum/inventario/inventory"
	"github.com/kbukum/inventario/server"
)

// assetID parses the :id route parameter. A non-numeric id maps to the
// same 404 an unknown numeric id would produce.
func assetID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, apperrors.NotFound("asset", raw)
	}
	return uint(id), nil
}

func (a *API) handleListAssets(c *gin.Context) {
	assets, err := a.inventory.List(c.Request.Context())
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, assets)
}

func (a *API) handleGetAsset(c *gin.Context) {
	id, err := assetID(c)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	asset, err := a.inventory.Get(c.Request.Context(), id)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, asset)
}

func (a *API) handleCreateAsset(c *gin.Context) {
	var input inventory.AssetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		server.RespondWithError(c, apperrors.Validation("request body must be valid JSON"))
		return
	}

	asset, err := a.inventory.Create(c.Request.Context(), input)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondCreated(c, asset)
}

func (a *API) handleUpdateAsset(c *gin.Context) {
	id, err := assetID(c)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	var input inventory.AssetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		server.RespondWithError(c, apperrors.Validation("request body must be valid JSON"))
		return
	}

	asset, err := a.inventory.Update(c.Request.Context(), id, input)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, asset)
}

func (a *API) handleDeleteAsset(c *gin.Context) {
	id, err := assetID(c)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	if err := a.inventory.Delete(c.Request.Context(), id); err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondNoContent(c)
}
