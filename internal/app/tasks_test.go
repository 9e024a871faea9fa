package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	service "github.com/okian/pulss/internal/app"
	model "github.com/okian/pulss/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTaskService_Offline(t *testing.T) {
	ctx := context.Background()

	Convey("Given the API is unreachable", t, func() {
		d, _ := offline()
		tasks := d.Tasks()

		Convey("When listing with and without a category", func() {
			all, err := tasks.List(ctx, "1", "")
			So(err, ShouldBeNil)
			So(all, ShouldHaveLength, 3)

			onboarding, err := tasks.List(ctx, "1", model.CategoryOnboarding)
			So(err, ShouldBeNil)
			So(onboarding, ShouldHaveLength, 2)
			for _, task := range onboarding {
				So(task.Category, ShouldEqual, model.CategoryOnboarding)
			}
		})

		Convey("When creating a blank task", func() {
			task, err := tasks.Create(ctx, "2", model.CreateTask{})

			Convey("Then defaults are applied and it is listed", func() {
				So(err, ShouldBeNil)
				So(task.Title, ShouldEqual, model.DefaultTaskTitle)
				So(task.Category, ShouldEqual, model.CategoryOperation)
				So(task.Status, ShouldEqual, model.TaskTodo)
				So(task.Source, ShouldEqual, "manual")
				list, _ := tasks.List(ctx, "2", "")
				So(list, ShouldHaveLength, 1)
			})
		})

		Convey("When updating a known task", func() {
			done := model.TaskDone
			task, err := tasks.Update(ctx, "t1", model.TaskPatch{Status: &done})
			So(err, ShouldBeNil)
			So(task.Status, ShouldEqual, model.TaskDone)
			So(task.IsOverdue(testNow.Add(30*24*time.Hour)), ShouldBeFalse)
		})

		Convey("When updating a task absent from fallback data", func() {
			_, err := tasks.Update(ctx, "ghost", model.TaskPatch{})

			Convey("Then the error reaches the caller", func() {
				So(err, ShouldNotBeNil)
				So(service.IsNotFound(err), ShouldBeTrue)
			})
		})

		Convey("When the category is unknown", func() {
			_, err := tasks.List(ctx, "1", "admin")
			So(errors.Is(err, service.ErrInvalidInput), ShouldBeTrue)
			bad := model.TaskStatus("waiting")
			_, err = tasks.Update(ctx, "t1", model.TaskPatch{Status: &bad})
			So(errors.Is(err, service.ErrInvalidInput), ShouldBeTrue)
		})
	})
}

func TestTaskService_Online(t *testing.T) {
	ctx := context.Background()

	Convey("Given a live API", t, func() {
		d, api := online(map[string]any{
			"GET /api/clients/1/tasks?category=operation": []map[string]any{{"id": "t3", "category": "operation", "status": "todo"}},
			"POST /api/clients/1/tasks":                   map[string]any{"id": "t9", "title": "タスク", "category": "operation", "status": "todo", "source": "manual"},
		})

		Convey("Then the category is forwarded as a query parameter", func() {
			list, err := d.Tasks().List(ctx, "1", model.CategoryOperation)
			So(err, ShouldBeNil)
			So(list, ShouldHaveLength, 1)
			So(api.lastCall(), ShouldEqual, "GET /api/clients/1/tasks?category=operation")
		})

		Convey("Then create sends the defaulted payload", func() {
			task, err := d.Tasks().Create(ctx, "1", model.CreateTask{})
			So(err, ShouldBeNil)
			So(task.ID, ShouldEqual, "t9")
			sent := api.lastBody().(model.CreateTask)
			So(sent.Title, ShouldEqual, model.DefaultTaskTitle)
			So(sent.Source, ShouldEqual, model.DefaultTaskSource)
		})
	})
}
