package controllers_test

import (
	"testing"

	"github.com/harvestly/market-backend/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestCreateAdvertisementMissingTitle(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(jsonRequest("POST", "/advertisements", `{"vendor_email":"ana@farm.test"}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400 for missing title, got %d", resp.StatusCode)
	}
}

func TestCreateAdvertisementVendorEmailPresenceOnly(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("non-address value accepted", func(mt *mtest.T) {
		database.Client = mt.Client
		database.DB = mt.Client.Database("marketDB")

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		app := newTestApp()
		body := `{"vendor_email":"vendor-one","ad_title":"Fresh greens"}`
		resp, err := app.Test(jsonRequest("POST", "/advertisements", body), -1)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != 201 {
			t.Fatalf("expected 201 for non-address vendor_email, got %d", resp.StatusCode)
		}
	})
}

func TestCreateAdvertisementForcesPending(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("caller-supplied status is ignored", func(mt *mtest.T) {
		database.Client = mt.Client
		database.DB = mt.Client.Database("marketDB")

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		app := newTestApp()
		body := `{"vendor_email":"ana@farm.test","ad_title":"Fresh greens","status":"active"}`
		resp, err := app.Test(jsonRequest("POST", "/advertisements", body), -1)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != 201 {
			t.Fatalf("expected 201, got %d", resp.StatusCode)
		}

		for _, evt := range mt.GetAllStartedEvents() {
			if evt.CommandName != "insert" {
				continue
			}
			status, err := evt.Command.LookupErr("documents", "0", "status")
			if err != nil || status.StringValue() != "pending" {
				t.Errorf("expected status forced to pending, got %v", status)
			}
		}
	})
}

func TestUpdateAdvertisementStatusInvalid(t *testing.T) {
	app := newTestApp()

	// "approved" is a product status; ads use active/paused
	resp, err := app.Test(jsonRequest("PATCH", "/advertisements/"+primitive.NewObjectID().Hex()+"/status", `{"status":"approved"}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400 for invalid status, got %d", resp.StatusCode)
	}
}

// Every member of the ad status enum passes validation, including
// transitions back to pending; the id parse failing afterwards (500) proves
// the body was accepted first.
func TestUpdateAdvertisementStatusEnumMembers(t *testing.T) {
	app := newTestApp()

	for _, status := range []string{"pending", "active", "paused", "rejected"} {
		resp, err := app.Test(jsonRequest("PATCH", "/advertisements/not-an-id/status", `{"status":"`+status+`"}`))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != 500 {
			t.Errorf("status %q: expected 500 after passing validation, got %d", status, resp.StatusCode)
		}
	}
}

func TestUpdateAdvertisementStatusUnguarded(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("assignment is a plain $set", func(mt *mtest.T) {
		database.Client = mt.Client
		database.DB = mt.Client.Database("marketDB")

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		app := newTestApp()
		id := primitive.NewObjectID().Hex()
		resp, err := app.Test(jsonRequest("PATCH", "/advertisements/"+id+"/status", `{"status":"paused"}`), -1)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != 200 {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}

		for _, evt := range mt.GetAllStartedEvents() {
			if evt.CommandName != "update" {
				continue
			}
			// no filter on the current status: any transition goes through
			filter, err := evt.Command.LookupErr("updates", "0", "q")
			if err != nil {
				t.Fatalf("update command without filter: %v", err)
			}
			if _, err := filter.Document().LookupErr("status"); err == nil {
				t.Error("status update must not be guarded by the current status")
			}
			set, err := evt.Command.LookupErr("updates", "0", "u", "$set", "status")
			if err != nil || set.StringValue() != "paused" {
				t.Errorf("expected $set status paused, got %v", set)
			}
		}
	})
}

func TestDeleteAdvertisementNotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("404 when nothing deleted", func(mt *mtest.T) {
		database.Client = mt.Client
		database.DB = mt.Client.Database("marketDB")

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		app := newTestApp()
		resp, err := app.Test(jsonRequest("DELETE", "/advertisements/"+primitive.NewObjectID().Hex(), ""), -1)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != 404 {
			t.Fatalf("expected 404, got %d", resp.StatusCode)
		}
	})
}
