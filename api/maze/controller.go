// Package mazeapi handles maze generation over HTTP.
package mazeapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/beka-birhanu/amazeing/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController manages maze operations.
type MazeController struct {
	mazes i.MazeManager
}

// NewMazeController initializes a MazeController.
func NewMazeController(mazes i.MazeManager) (*MazeController, error) {
	if mazes == nil {
		return nil, errors.New("maze manager is required")
	}
	return &MazeController{mazes: mazes}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.create)
		mazes.GET("/:ID", mc.byID)
		mazes.GET("/:ID/output", mc.output)
		mazes.POST("/:ID/regenerate", mc.regenerate)
	}
}

// create handles maze generation requests.
func (mc *MazeController) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	record, err := mc.mazes.Create(timeoutCtx, request.Spec())
	if err != nil {
		respondError(ctx, err)
		return
	}

	response, err := newMazeResponse(record)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, response)
}

// byID retrieves a stored maze.
func (mc *MazeController) byID(ctx *gin.Context) {
	ID, ok := parseID(ctx)
	if !ok {
		return
	}

	record, err := mc.mazes.ByID(ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response, err := newMazeResponse(record)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response)
}

// output serves a stored maze in the output file format.
func (mc *MazeController) output(ctx *gin.Context) {
	ID, ok := parseID(ctx)
	if !ok {
		return
	}

	record, err := mc.mazes.ByID(ID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(record.Output))
}

// regenerate creates a new maze from a stored one with the next seed.
func (mc *MazeController) regenerate(ctx *gin.Context) {
	ID, ok := parseID(ctx)
	if !ok {
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	record, err := mc.mazes.Regenerate(timeoutCtx, ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response, err := newMazeResponse(record)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, response)
}

func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	IDString := ctx.Params.ByName("ID")
	ID, err := uuid.Parse(IDString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return ID, true
}

func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, i.ErrInvalidSpec):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, i.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while processing maze"})
	}
}
