package responses

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hasnainotho/formbrick-backend/src/database"
	"github.com/hasnainotho/formbrick-backend/src/models"
	"github.com/hasnainotho/formbrick-backend/src/services/email"
	"github.com/hasnainotho/formbrick-backend/src/services/forms"
	"github.com/hasnainotho/formbrick-backend/src/services/workflow"
)

var ErrResponseNotFound = errors.New("response not found")

var responsesCollection *mongo.Collection

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	responsesCollection = database.ResponseCollection
	if responsesCollection == nil {
		log.Fatal("Failed to get the responses collection")
	}
}

// SubmitResponse persists the response with its answers, then runs the
// conditional-logic workflow pass best-effort. Workflow failures never undo
// or fail the submission: the response is durable before the engine runs.
func SubmitResponse(ctx context.Context, req *models.SubmitResponseRequest) (*models.FormResponse, *workflow.Result, error) {
	formID, err := primitive.ObjectIDFromHex(req.FormID)
	if err != nil {
		return nil, nil, errors.New("invalid form ID")
	}

	// verify the form exists before accepting answers for it
	if _, err := forms.GetFormByID(ctx, formID); err != nil {
		return nil, nil, err
	}

	status := req.Status
	if status == "" {
		status = models.StatusSubmitted
	}

	answers := make([]models.Answer, 0, len(req.Answers))
	for _, a := range req.Answers {
		qid, err := primitive.ObjectIDFromHex(a.QuestionID)
		if err != nil {
			return nil, nil, errors.New("invalid question ID in answer")
		}
		answers = append(answers, models.Answer{
			ID:           primitive.NewObjectID(),
			QuestionID:   qid,
			AnswerText:   a.AnswerText,
			AnswerNumber: a.AnswerNumber,
			AnswerDate:   a.AnswerDate,
			AnswerJSON:   a.AnswerJSON,
		})
	}

	response := &models.FormResponse{
		FormID:          formID,
		RespondentID:    req.RespondentID,
		RespondentEmail: req.RespondentEmail,
		ReferenceID:     req.ReferenceID,
		ReferenceType:   req.ReferenceType,
		Status:          status,
		Answers:         answers,
		SubmittedAt:     time.Now(),
	}

	result, err := responsesCollection.InsertOne(ctx, response)
	if err != nil {
		return nil, nil, err
	}
	response.ID = result.InsertedID.(primitive.ObjectID)

	log.Printf("[response] inserted id=%s form=%s answers=%d",
		response.ID.Hex(), formID.Hex(), len(response.Answers))

	// best-effort workflow pass; the submission above already succeeded
	workflowResult := runWorkflows(ctx, response)

	// a response arriving against a ticket goes straight into approval
	if req.ReferenceType == "ticket" && req.ReferenceID != "" {
		if _, err := UpdateResponseStatus(ctx, response.ID, models.StatusPendingApproval); err == nil {
			response.Status = models.StatusPendingApproval
		} else {
			log.Printf("[response] pending_approval for ticket reference failed: %v", err)
		}
	}

	return response, workflowResult, nil
}

func runWorkflows(ctx context.Context, response *models.FormResponse) (result *workflow.Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[response] workflow pass panicked for %s: %v", response.ID.Hex(), r)
			result = nil
		}
	}()

	engine := workflow.NewEngine(newStore(), email.NewNotifier())
	answersMap := workflow.BuildAnswerMap(response.Answers)
	r := engine.ProcessWorkflows(ctx, response, answersMap)
	return &r
}

// GetResponse retrieves a response with its answers
func GetResponse(ctx context.Context, id primitive.ObjectID) (*models.FormResponse, error) {
	var response models.FormResponse
	err := responsesCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&response)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrResponseNotFound
		}
		return nil, err
	}
	return &response, nil
}

// GetResponsesByForm lists a form's responses, newest first
func GetResponsesByForm(ctx context.Context, formID primitive.ObjectID) ([]models.FormResponse, error) {
	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})
	cursor, err := responsesCollection.Find(ctx, bson.M{"formId": formID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.FormResponse
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateResponse applies an allow-listed partial update
func UpdateResponse(ctx context.Context, id primitive.ObjectID, upd *models.ResponseUpdate) (*models.FormResponse, error) {
	set := bson.M{}
	if upd.RespondentID != nil {
		set["respondentId"] = *upd.RespondentID
	}
	if upd.RespondentEmail != nil {
		set["respondentEmail"] = *upd.RespondentEmail
	}
	if upd.ReferenceID != nil {
		set["referenceId"] = *upd.ReferenceID
	}
	if upd.ReferenceType != nil {
		set["referenceType"] = *upd.ReferenceType
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}

	if len(set) == 0 {
		return nil, errors.New("no updatable fields given")
	}

	result := responsesCollection.FindOneAndUpdate(ctx, bson.M{"_id": id},
		bson.M{"$set": set}, options.FindOneAndUpdate().SetReturnDocument(options.After))

	var response models.FormResponse
	if err := result.Decode(&response); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrResponseNotFound
		}
		return nil, err
	}
	return &response, nil
}

// UpdateResponseStatus writes a new status onto the response
func UpdateResponseStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.FormResponse, error) {
	result := responsesCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After))

	var response models.FormResponse
	if err := result.Decode(&response); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrResponseNotFound
		}
		return nil, err
	}
	return &response, nil
}

// UpdateAnswers replaces the response's answer set wholesale
func UpdateAnswers(ctx context.Context, id primitive.ObjectID, in []models.AnswerIn) ([]models.Answer, error) {
	answers := make([]models.Answer, 0, len(in))
	for _, a := range in {
		qid, err := primitive.ObjectIDFromHex(a.QuestionID)
		if err != nil {
			return nil, errors.New("invalid question ID in answer")
		}
		answers = append(answers, models.Answer{
			ID:           primitive.NewObjectID(),
			QuestionID:   qid,
			AnswerText:   a.AnswerText,
			AnswerNumber: a.AnswerNumber,
			AnswerDate:   a.AnswerDate,
			AnswerJSON:   a.AnswerJSON,
		})
	}

	result := responsesCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"answers": answers}},
		options.FindOneAndUpdate().SetReturnDocument(options.After))

	var response models.FormResponse
	if err := result.Decode(&response); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrResponseNotFound
		}
		return nil, err
	}
	return response.Answers, nil
}

// ApproveResponse records the approval decision. Approved and rejected are
// terminal.
func ApproveResponse(ctx context.Context, id primitive.ObjectID, approve bool) (*models.FormResponse, error) {
	status := models.StatusRejected
	if approve {
		status = models.StatusApproved
	}
	return UpdateResponseStatus(ctx, id, status)
}
