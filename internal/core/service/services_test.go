package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labreserve/switch-console/internal/core/domain"
	"github.com/labreserve/switch-console/internal/core/endpoint"
	"github.com/labreserve/switch-console/internal/core/ports"
)

func TestSwitchService_GetAll_KeyedList(t *testing.T) {
	backend := &stubBackend{status: 200, body: `{"switchs":[{"id":1,"mngt_IP":"10.0.0.1","model":"EX4300"}]}`}
	svc := NewSwitchService(backend, zerolog.Nop())

	res := svc.GetAll(context.Background())

	require.True(t, res.Success)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "10.0.0.1", res.Data[0].ManagementIP)
	assert.Equal(t, "list_switch/", backend.last().Path)
	assert.Equal(t, http.MethodGet, backend.last().Method)
}

func TestSwitchService_GetAll_Failure(t *testing.T) {
	svc := NewSwitchService(&stubBackend{status: 503}, zerolog.Nop())

	res := svc.GetAll(context.Background())

	assert.False(t, res.Success)
	assert.Equal(t, "Failed to fetch switches. Please try again.", res.Message)
	assert.Equal(t, 503, res.Status)
}

func TestSwitchService_GetAll_MalformedSuccess(t *testing.T) {
	svc := NewSwitchService(&stubBackend{status: 200, body: `{"unexpected":true}`}, zerolog.Nop())

	res := svc.GetAll(context.Background())

	assert.False(t, res.Success)
	assert.Equal(t, "Failed to fetch switches. Please try again.", res.Message)
}

func TestSwitchService_Reserve(t *testing.T) {
	backend := &stubBackend{status: 201, body: `{"detail":"Reservation successful."}`}
	svc := NewSwitchService(backend, zerolog.Nop())

	res := svc.Reserve(context.Background(), ports.ReserveInput{SwitchID: 4, EndDate: "2026-03-01"})
	require.True(t, res.Success)
	assert.Equal(t, "Reservation successful.", res.Data)
	assert.Equal(t, 201, res.Status)
	assert.JSONEq(t, `{"switch":4,"end_date":"2026-03-01"}`, bodyJSON(backend.last().Body))

	svc.Reserve(context.Background(), ports.ReserveInput{SwitchID: 4, Exclusive: true})
	assert.JSONEq(t, `{"switch":4,"confirmation":0}`, bodyJSON(backend.last().Body))
}

func TestSwitchService_Reserve_Warning(t *testing.T) {
	backend := &stubBackend{status: 400, body: `{"warning":"This switch is already reserved."}`}
	svc := NewSwitchService(backend, zerolog.Nop())

	res := svc.Reserve(context.Background(), ports.ReserveInput{SwitchID: 4, Exclusive: true})

	assert.False(t, res.Success)
	assert.Equal(t, "This switch is already reserved.", res.Message)
}

func TestSwitchService_Release(t *testing.T) {
	backend := &stubBackend{status: 200, body: `{"detail":"Release successful."}`}
	svc := NewSwitchService(backend, zerolog.Nop())

	res := svc.Release(context.Background(), 4, true)

	require.True(t, res.Success)
	assert.Equal(t, endpoint.Release, backend.last().Operation)
	assert.JSONEq(t, `{"switch":4,"cleanup":true}`, bodyJSON(backend.last().Body))
}

func TestReservationService_GetAll_BareArray(t *testing.T) {
	backend := &stubBackend{status: 200, body: `[{"id":1,"switch":2,"user":3,"creation_date":"2026-02-19T10:00:00Z","end_date":null}]`}

	res := NewReservationService(backend).GetAll(context.Background())

	require.True(t, res.Success)
	require.Len(t, res.Data, 1)
	assert.Equal(t, 2, res.Data[0].Switch)
	assert.Nil(t, res.Data[0].EndDate)
}

func TestReservationService_GetAll_Empty(t *testing.T) {
	res := NewReservationService(&stubBackend{status: 200, body: `[]`}).GetAll(context.Background())

	require.True(t, res.Success)
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
}

func TestPortService(t *testing.T) {
	backend := &stubBackend{status: 200, body: `{"ports":[{"id":5,"switch":1,"port_switch":"ge-0/0/1","svlan":1001,"status":"UP"}]}`}
	svc := NewPortService(backend, zerolog.Nop())
	ctx := context.Background()

	all := svc.GetAll(ctx)
	require.True(t, all.Success)
	require.Len(t, all.Data, 1)
	assert.True(t, all.Data[0].Connected())

	backend.body = `[{"id":6,"switch":3,"svlan":null,"status":"DOWN"}]`
	bySwitch := svc.GetBySwitch(ctx, 3)
	require.True(t, bySwitch.Success)
	assert.Equal(t, "list_port/3/", backend.last().Path)
	assert.False(t, bySwitch.Data[0].Connected())

	backend.body = `{"detail":"Ports connected successfully with svlan 1002"}`
	conn := svc.Connect(ctx, 5, 6)
	require.True(t, conn.Success)
	assert.Equal(t, "Ports connected successfully with svlan 1002", conn.Data)
	assert.JSONEq(t, `{"portA":5,"portB":6}`, bodyJSON(backend.last().Body))

	disc := svc.Disconnect(ctx, 5, 6)
	require.True(t, disc.Success)
	assert.Equal(t, "disconnect/", backend.last().Path)
}

func TestUserService(t *testing.T) {
	backend := &stubBackend{status: 200, body: `{"users":[{"id":1,"username":"alice","is_staff":true}]}`}
	svc := NewUserService(backend)

	all := svc.GetAll(context.Background())
	require.True(t, all.Success)
	assert.Equal(t, "alice", all.Data[0].Username)

	backend.body = `{"id":1,"username":"alice"}`
	one := svc.GetByID(context.Background(), 1)
	require.True(t, one.Success)
	assert.Equal(t, "alice", one.Data.Username)
	assert.Equal(t, "list_user/1/", backend.last().Path)

	backend.status = http.StatusForbidden
	denied := svc.GetAll(context.Background())
	assert.Equal(t, "You do not have permission to perform this action.", denied.Message)
}

func TestTopologyService(t *testing.T) {
	backend := &stubBackend{status: 201, body: `{"detail":"Topology shared with bob."}`}
	svc := NewTopologyService(backend, zerolog.Nop())
	ctx := context.Background()

	shared := svc.Share(ctx, "bob")
	require.True(t, shared.Success)
	assert.JSONEq(t, `{"target_username":"bob"}`, bodyJSON(backend.last().Body))

	backend.status = 200
	backend.body = `{"shares":[{"id":2,"owner":1,"target":3,"target_username":"bob","created_at":"2026-02-19T10:00:00Z"}]}`
	list := svc.GetShared(ctx)
	require.True(t, list.Success)
	assert.Equal(t, "bob", list.Data[0].TargetUsername)

	backend.body = `{"detail":"Unshared."}`
	un := svc.Unshare(ctx, 2)
	require.True(t, un.Success)
	assert.Equal(t, http.MethodDelete, backend.last().Method)
	assert.Equal(t, "unshare_topology/2/", backend.last().Path)
}

func TestDecodeResult_PassesFailureThrough(t *testing.T) {
	res := decodeResult[domain.User](domain.Fail[json.RawMessage]("not here", 404), "fetch user")

	assert.False(t, res.Success)
	assert.Equal(t, "not here", res.Message)
	assert.Equal(t, 404, res.Status)
}
